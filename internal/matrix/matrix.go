package matrix

import "fmt"

// Matrix is a dense rows×cols matrix of float64 values.
//
// Element (i, j) is stored at data[i*rowStride + j*colStride]. Matrices
// created by New, Zeros or FromSlice own their storage and are row-major
// (rowStride == cols, colStride == 1). Views share storage with the
// matrix they were taken from.
type Matrix struct {
	rows      int
	cols      int
	rowStride int
	colStride int
	data      []float64
	view      bool
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// Len returns rows*cols.
func (m *Matrix) Len() int {
	return m.rows * m.cols
}

// IsView reports whether m aliases another matrix's storage.
func (m *Matrix) IsView() bool {
	return m.view
}

// At returns element (i, j). Indices are not bounds-checked beyond what
// the underlying slice enforces.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.rowStride+j*m.colStride]
}

// Set assigns v to element (i, j).
func (m *Matrix) Set(i, j int, v float64) {
	m.data[i*m.rowStride+j*m.colStride] = v
}

// contiguous reports whether the elements of m occupy data[:rows*cols]
// in row-major order.
func (m *Matrix) contiguous() bool {
	if m.colStride != 1 {
		return m.cols == 1 && (m.rows == 1 || m.rowStride == 1)
	}
	return m.rows == 1 || m.rowStride == m.cols
}

// raw returns the row-major backing slice of a contiguous matrix.
func (m *Matrix) raw() []float64 {
	return m.data[:m.rows*m.cols]
}

// RawData returns a row-major copy of the elements of m.
func (m *Matrix) RawData() []float64 {
	out := make([]float64, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

// Clone returns an owning row-major copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows:      m.rows,
		cols:      m.cols,
		rowStride: m.cols,
		colStride: 1,
		data:      m.RawData(),
	}
}

// SameShape reports whether a and b have the same dimensions.
func SameShape(a, b *Matrix) bool {
	return a.rows == b.rows && a.cols == b.cols
}

func (m *Matrix) shape() string {
	return fmt.Sprintf("[%dx%d]", m.rows, m.cols)
}
