package matrix

import "fmt"

// T returns a transposed view of m.
//
// The view has m's rows and columns swapped and aliases m's storage:
// element (i, j) of the view is element (j, i) of m. T(T(m)) reads
// identically to m. Do not keep the view beyond the call that needs it.
func T(m *Matrix) *Matrix {
	return &Matrix{
		rows:      m.cols,
		cols:      m.rows,
		rowStride: m.colStride,
		colStride: m.rowStride,
		data:      m.data,
		view:      true,
	}
}

// Row returns a 1×cols view aliasing row r of m.
//
// Panics with ErrBadShape if r is out of range.
func Row(m *Matrix, r int) *Matrix {
	if r < 0 || r >= m.rows {
		shapePanic("row", "row out of range", ErrBadShape, fmt.Sprintf("row %d of %s", r, m.shape()))
	}
	return &Matrix{
		rows:      1,
		cols:      m.cols,
		rowStride: m.rowStride,
		colStride: m.colStride,
		data:      m.data[r*m.rowStride:],
		view:      true,
	}
}

// SliceRows returns a view aliasing rows [start, end) of m.
//
// Panics with ErrBadShape unless 0 <= start < end <= m.Rows().
func SliceRows(m *Matrix, start, end int) *Matrix {
	if start < 0 || end > m.rows || start >= end {
		shapePanic("slice rows", "row range out of bounds", ErrBadShape,
			fmt.Sprintf("[%d:%d] of %s", start, end, m.shape()))
	}
	return &Matrix{
		rows:      end - start,
		cols:      m.cols,
		rowStride: m.rowStride,
		colStride: m.colStride,
		data:      m.data[start*m.rowStride:],
		view:      true,
	}
}

// ShufflePaired shuffles the rows of m in place (Fisher–Yates) and
// applies the same permutation to the rows of n, so that row i of m and
// row i of n stay paired.
//
// For i from 0 to rows-1 an index r is drawn uniformly from [i, rows-1];
// when r != i, rows i and r are swapped in both matrices.
//
// Panics if m and n have different row counts.
func ShufflePaired(m, n *Matrix) {
	if m.rows != n.rows {
		shapePanic("shuffle", "row counts differ", ErrShapeMismatch, fmt.Sprintf("%s vs %s", m.shape(), n.shape()))
	}

	for i := 0; i < m.rows; i++ {
		r := i + intN(m.rows-i)
		if r != i {
			swapRows(m, i, r)
			swapRows(n, i, r)
		}
	}
}

func swapRows(m *Matrix, a, b int) {
	for j := 0; j < m.cols; j++ {
		tmp := m.At(a, j)
		m.Set(a, j, m.At(b, j))
		m.Set(b, j, tmp)
	}
}
