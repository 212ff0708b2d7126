// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrices used by the densenet
// trainer.
//
// # Overview
//
// A Matrix is a 2-D buffer addressed through row and column strides, so
// transposes and row ranges are views that alias their owner instead of
// copies:
//   - T(m): transpose view, element (i, j) is element (j, i) of m
//   - Row(m, r): 1×cols view of row r
//   - SliceRows(m, start, end): view of rows [start, end)
//
// Operations work in place on their first argument and panic with a
// *ShapeError when operand shapes do not fit.
//
// # Basic Usage
//
//	import "github.com/born-ml/densenet/matrix"
//
//	func main() {
//	    matrix.Seed(42)
//
//	    a := matrix.New(2, 3)         // uniform in [-1, 1]
//	    b := matrix.Zeros(3, 2)
//	    out := matrix.Zeros(2, 2)
//
//	    matrix.MulInto(out, a, b)
//	    matrix.Sigmoid(out)
//	    fmt.Print(matrix.Format(out, "out"))
//	}
//
// # Random Numbers
//
// New and Randomize draw from a single process-wide generator seeded
// from the clock at startup. Call Seed once to make a run reproducible.
//
// # gonum Interop
//
// *Matrix implements gonum.org/v1/gonum/mat.Matrix, so it can be passed
// to any gonum routine that reads matrices. Dense returns a *mat.Dense
// sharing storage with a row-major owner, and FromMatrix copies any
// mat.Matrix into a new owner.
package matrix
