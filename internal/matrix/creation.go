package matrix

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Bounds of the uniform distribution used by New.
const (
	InitLow  = -1.0
	InitHigh = 1.0
)

// rng is the process-wide random source. It is seeded once when the
// package is initialized and only reseeded through Seed.
//
//nolint:gosec // G404: weight initialization and shuffling are not security-critical
var rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))

// Seed reseeds the process-wide random source. Runs that call Seed with
// the same value before building and training a network are
// reproducible.
func Seed(seed uint64) {
	//nolint:gosec // G404: see rng
	rng = rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// New allocates a rows×cols matrix whose entries are drawn independently
// and uniformly from [InitLow, InitHigh].
//
// Panics with ErrBadShape if rows or cols is not positive.
func New(rows, cols int) *Matrix {
	m := alloc("new", rows, cols)
	Randomize(m, InitLow, InitHigh)
	return m
}

// Zeros allocates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *Matrix {
	return alloc("zeros", rows, cols)
}

// FromSlice allocates a rows×cols matrix holding a copy of data, which is
// read in row-major order.
//
// Example:
//
//	xor := matrix.FromSlice(4, 2, []float64{
//	    0, 0,
//	    0, 1,
//	    1, 0,
//	    1, 1,
//	})
func FromSlice(rows, cols int, data []float64) *Matrix {
	m := alloc("from slice", rows, cols)
	if len(data) != rows*cols {
		shapePanic("from slice", "data length does not match shape", ErrBadShape,
			fmt.Sprintf("len=%d for [%dx%d]", len(data), rows, cols))
	}
	copy(m.data, data)
	return m
}

// Randomize overwrites every entry of m with a value drawn uniformly from
// [lo, hi].
func Randomize(m *Matrix, lo, hi float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.Set(i, j, rng.Float64()*(hi-lo)+lo)
		}
	}
}

// intN returns a uniform integer in [0, n).
func intN(n int) int {
	return rng.IntN(n)
}

func alloc(op string, rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		shapePanic(op, "dimensions must be > 0", ErrBadShape, fmt.Sprintf("[%dx%d]", rows, cols))
	}
	return &Matrix{
		rows:      rows,
		cols:      cols,
		rowStride: cols,
		colStride: 1,
		data:      make([]float64, rows*cols),
	}
}
