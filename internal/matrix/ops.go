package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add computes a += b element-wise.
//
// Panics if a and b do not have identical shapes.
func Add(a, b *Matrix) {
	mustSameShape("add", "invalid matrix to sum", a, b)

	if a.contiguous() && b.contiguous() {
		floats.Add(a.raw(), b.raw())
		return
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			a.Set(i, j, a.At(i, j)+b.At(i, j))
		}
	}
}

// Sub computes a -= b element-wise.
//
// Panics if a and b do not have identical shapes.
func Sub(a, b *Matrix) {
	mustSameShape("sub", "invalid matrix to sum", a, b)

	if a.contiguous() && b.contiguous() {
		floats.Sub(a.raw(), b.raw())
		return
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			a.Set(i, j, a.At(i, j)-b.At(i, j))
		}
	}
}

// AddScaled computes dst += alpha*src element-wise.
func AddScaled(dst *Matrix, alpha float64, src *Matrix) {
	mustSameShape("add scaled", "invalid matrix to sum", dst, src)

	if dst.contiguous() && src.contiguous() {
		floats.AddScaled(dst.raw(), alpha, src.raw())
		return
	}
	for i := 0; i < dst.rows; i++ {
		for j := 0; j < dst.cols; j++ {
			dst.Set(i, j, dst.At(i, j)+alpha*src.At(i, j))
		}
	}
}

// MulElem computes a *= b element-wise (Hadamard product).
func MulElem(a, b *Matrix) {
	mustSameShape("mul elem", "invalid matrix to multiply", a, b)

	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			a.Set(i, j, a.At(i, j)*b.At(i, j))
		}
	}
}

// DivScalar divides every entry of m by x.
func DivScalar(m *Matrix, x float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.Set(i, j, m.At(i, j)/x)
		}
	}
}

// MulInto computes the matrix product dest = a · b.
//
// Requires a.Cols() == b.Rows(), dest.Rows() == a.Rows() and
// dest.Cols() == b.Cols(). dest is zeroed first and then accumulated
// with the plain triple loop. dest must not alias a or b.
func MulInto(dest, a, b *Matrix) {
	if a.cols != b.rows || dest.rows != a.rows || dest.cols != b.cols {
		shapePanic("matmul", "invalid matrix to dot", ErrShapeMismatch,
			fmt.Sprintf("%s = %s · %s", dest.shape(), a.shape(), b.shape()))
	}
	inner := a.cols

	Fill(dest, 0)

	for i := 0; i < dest.rows; i++ {
		for j := 0; j < dest.cols; j++ {
			sum := dest.At(i, j)
			for k := 0; k < inner; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			dest.Set(i, j, sum)
		}
	}
}

// Fill sets every entry of m to x.
func Fill(m *Matrix, x float64) {
	if m.contiguous() {
		data := m.raw()
		for i := range data {
			data[i] = x
		}
		return
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.Set(i, j, x)
		}
	}
}

// Copy copies src into dest.
//
// Panics if the shapes differ.
func Copy(dest, src *Matrix) {
	mustSameShape("copy", "invalid matrix to copy", dest, src)

	if dest.contiguous() && src.contiguous() {
		copy(dest.raw(), src.raw())
		return
	}
	for i := 0; i < dest.rows; i++ {
		for j := 0; j < dest.cols; j++ {
			dest.Set(i, j, src.At(i, j))
		}
	}
}

// Equal reports whether a and b have the same shape and identical entries.
func Equal(a, b *Matrix) bool {
	return EqualApprox(a, b, 0)
}

// EqualApprox reports whether a and b have the same shape and every pair
// of entries differs by at most tol.
func EqualApprox(a, b *Matrix, tol float64) bool {
	if !SameShape(a, b) {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if !floats.EqualWithinAbs(a.At(i, j), b.At(i, j), tol) {
				return false
			}
		}
	}
	return true
}
