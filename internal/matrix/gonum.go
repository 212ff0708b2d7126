package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

var _ mat.Matrix = (*Matrix)(nil)

// T implements mat.Matrix by returning the transposed view of m.
func (m *Matrix) T() mat.Matrix {
	return T(m)
}

// Dense returns a *mat.Dense holding the entries of m. The result shares
// storage with m when m is row-major (an owner, a Row or a SliceRows
// view); a transposed view is copied.
func (m *Matrix) Dense() *mat.Dense {
	if m.colStride != 1 && m.cols > 1 {
		return mat.NewDense(m.rows, m.cols, m.RawData())
	}
	stride := m.rowStride
	if m.rows == 1 || stride < m.cols {
		stride = m.cols
	}
	if m.rows > 1 && m.rowStride != stride {
		return mat.NewDense(m.rows, m.cols, m.RawData())
	}

	var d mat.Dense
	d.SetRawMatrix(blas64.General{
		Rows:   m.rows,
		Cols:   m.cols,
		Stride: stride,
		Data:   m.data[:(m.rows-1)*stride+m.cols],
	})
	return &d
}

// FromMatrix copies any gonum matrix into a new owning Matrix.
func FromMatrix(src mat.Matrix) *Matrix {
	r, c := src.Dims()
	m := alloc("from matrix", r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, src.At(i, j))
		}
	}
	return m
}

// Format renders m under a name, one row per line:
//
//	weights = [
//		⎡ 0.5  -0.25⎤
//		⎣0.125      1⎦
//	]
func Format(m *Matrix, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = [\n\t", name)
	fmt.Fprintf(&b, "%v\n", mat.Formatted(m, mat.Prefix("\t")))
	b.WriteString("]")
	return b.String()
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m))
}
