package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// requireShapePanic runs fn and checks that it panics with a *ShapeError
// wrapping sentinel.
func requireShapePanic(t *testing.T, sentinel error, fn func()) *ShapeError {
	t.Helper()

	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected panic")

	err, ok := got.(error)
	require.True(t, ok, "panic value %v is not an error", got)
	require.ErrorIs(t, err, sentinel)

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	return se
}

func TestNewUniformRange(t *testing.T) {
	Seed(1)
	m := New(50, 40)

	assert.Equal(t, 50, m.Rows())
	assert.Equal(t, 40, m.Cols())

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, v := range m.RawData() {
		require.GreaterOrEqual(t, v, InitLow)
		require.LessOrEqual(t, v, InitHigh)
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	// 2000 draws cover most of the interval.
	assert.Less(t, minV, -0.9)
	assert.Greater(t, maxV, 0.9)
}

func TestNewBadShape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireShapePanic(t, ErrBadShape, func() { New(tt.rows, tt.cols) })
		})
	}
}

func TestSeedReproducible(t *testing.T) {
	Seed(42)
	a := New(3, 3)
	Seed(42)
	b := New(3, 3)
	assert.True(t, Equal(a, b))

	// Consecutive allocations draw fresh values from the same source.
	c := New(3, 3)
	assert.False(t, Equal(b, c))
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := FromSlice(2, 3, data)

	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 4.0, m.At(1, 0))

	// FromSlice copies.
	data[0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))

	requireShapePanic(t, ErrBadShape, func() { FromSlice(2, 2, data) })
}

func TestCloneIsIndependent(t *testing.T) {
	m := FromSlice(2, 2, []float64{1, 2, 3, 4})
	c := T(m).Clone()

	assert.False(t, c.IsView())
	assert.Equal(t, []float64{1, 3, 2, 4}, c.RawData())

	c.Set(0, 0, 9)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestDenseSharesStorage(t *testing.T) {
	m := FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d := m.Dense()
	d.Set(1, 2, 60)
	assert.Equal(t, 60.0, m.At(1, 2))

	row := Row(m, 1).Dense()
	r, c := row.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4.0, row.At(0, 0))

	// Transposed views come back as a copy with the right values.
	tr := T(m).Dense()
	assert.True(t, mat.Equal(tr, m.T()))
}

func TestFromMatrix(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m := FromMatrix(src)
	assert.True(t, mat.Equal(src, m))
}

func TestFormat(t *testing.T) {
	m := FromSlice(2, 2, []float64{1, 2, 3, 4})
	s := Format(m, "w")

	assert.Contains(t, s, "w = [\n")
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "4")
	assert.NotEmpty(t, m.String())
}
