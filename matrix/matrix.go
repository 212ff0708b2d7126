// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/densenet/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense float64 matrix or a strided view of one.
type Matrix = matrix.Matrix

// ShapeError is the panic value of every operation whose operand shapes
// do not fit.
type ShapeError = matrix.ShapeError

// Sentinel errors wrapped by ShapeError.
var (
	ErrBadShape      = matrix.ErrBadShape
	ErrShapeMismatch = matrix.ErrShapeMismatch
)

// Initialization range of New.
const (
	InitLow  = matrix.InitLow
	InitHigh = matrix.InitHigh
)

// LeakyReLUSlope is the factor LeakyReLU applies to non-positive inputs.
const LeakyReLUSlope = matrix.LeakyReLUSlope

// Creation

// Seed reseeds the process-wide generator used by New and Randomize.
func Seed(seed uint64) {
	matrix.Seed(seed)
}

// New creates a rows×cols matrix with entries uniform in [-1, 1].
//
// Example:
//
//	w := matrix.New(784, 16)
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	return matrix.Zeros(rows, cols)
}

// FromSlice creates a rows×cols matrix from row-major data (copied).
//
// Example:
//
//	x := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
func FromSlice(rows, cols int, data []float64) *Matrix {
	return matrix.FromSlice(rows, cols, data)
}

// FromMatrix copies any gonum matrix into a new Matrix.
func FromMatrix(src mat.Matrix) *Matrix {
	return matrix.FromMatrix(src)
}

// Randomize fills m uniformly from [lo, hi].
func Randomize(m *Matrix, lo, hi float64) {
	matrix.Randomize(m, lo, hi)
}

// Arithmetic

// Add computes a += b.
func Add(a, b *Matrix) {
	matrix.Add(a, b)
}

// Sub computes a -= b.
func Sub(a, b *Matrix) {
	matrix.Sub(a, b)
}

// AddScaled computes dst += alpha*src.
func AddScaled(dst *Matrix, alpha float64, src *Matrix) {
	matrix.AddScaled(dst, alpha, src)
}

// MulElem computes the element-wise product a *= b.
func MulElem(a, b *Matrix) {
	matrix.MulElem(a, b)
}

// DivScalar divides every entry of m by x.
func DivScalar(m *Matrix, x float64) {
	matrix.DivScalar(m, x)
}

// MulInto overwrites dest with the matrix product a · b.
func MulInto(dest, a, b *Matrix) {
	matrix.MulInto(dest, a, b)
}

// Fill sets every entry of m to x.
func Fill(m *Matrix, x float64) {
	matrix.Fill(m, x)
}

// Copy copies src into dest.
func Copy(dest, src *Matrix) {
	matrix.Copy(dest, src)
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Matrix) bool {
	return matrix.Equal(a, b)
}

// EqualApprox reports whether a and b have the same shape and entries
// within tol.
func EqualApprox(a, b *Matrix, tol float64) bool {
	return matrix.EqualApprox(a, b, tol)
}

// Views

// T returns the transpose view of m.
func T(m *Matrix) *Matrix {
	return matrix.T(m)
}

// Row returns the 1×cols view of row r.
func Row(m *Matrix, r int) *Matrix {
	return matrix.Row(m, r)
}

// SliceRows returns the view of rows [start, end).
func SliceRows(m *Matrix, start, end int) *Matrix {
	return matrix.SliceRows(m, start, end)
}

// ShufflePaired permutes the rows of m and n with the same random
// permutation.
func ShufflePaired(m, n *Matrix) {
	matrix.ShufflePaired(m, n)
}

// Activations

// Sigmoid applies 1/(1+e^-x) in place.
func Sigmoid(m *Matrix) {
	matrix.Sigmoid(m)
}

// SigmoidDerivative maps sigmoid outputs y to y*(1-y) in place.
func SigmoidDerivative(m *Matrix) {
	matrix.SigmoidDerivative(m)
}

// LeakyReLU applies x for x > 0 and x*LeakyReLUSlope otherwise, in place.
func LeakyReLU(m *Matrix) {
	matrix.LeakyReLU(m)
}

// LeakyReLUDerivative maps LeakyReLU outputs to 1 or LeakyReLUSlope in place.
func LeakyReLUDerivative(m *Matrix) {
	matrix.LeakyReLUDerivative(m)
}

// Apply replaces every entry x of m with f(x).
func Apply(m *Matrix, f func(float64) float64) {
	matrix.Apply(m, f)
}

// Format renders m as "name = [ ... ]".
func Format(m *Matrix, name string) string {
	return matrix.Format(m, name)
}
