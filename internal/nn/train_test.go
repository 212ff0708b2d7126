package nn_test

import (
	"testing"

	"github.com/born-ml/densenet/internal/matrix"
	"github.com/born-ml/densenet/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// andDataset returns the four rows of the logical AND truth table.
func andDataset() (inputs, targets *matrix.Matrix) {
	inputs = matrix.FromSlice(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	targets = matrix.FromSlice(4, 1, []float64{0, 0, 0, 1})
	return inputs, targets
}

// oddDataset returns five rows, so batches of two leave a short last batch.
func oddDataset() (inputs, targets *matrix.Matrix) {
	inputs = matrix.FromSlice(5, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
		0.5, 0.5,
	})
	targets = matrix.FromSlice(5, 1, []float64{0, 1, 1, 0, 1})
	return inputs, targets
}

// gradVector flattens every accumulator of m in persistence order.
func gradVector(m nn.Module) []float64 {
	var grads []float64
	for _, p := range m.Parameters() {
		grads = append(grads, p.Grad().RawData()...)
	}
	return grads
}

// twin returns a network with the same topology and weights as net.
func twin(t *testing.T, net *nn.Network, sizes []int, acts ...nn.Activation) *nn.Network {
	t.Helper()
	other := nn.NewMLP(sizes, acts...)
	require.NoError(t, nn.LoadStateVector(other, nn.StateVector(net)))
	return other
}

func TestCost_KnownValue(t *testing.T) {
	net := nn.NewMLP([]int{2, 1}, nn.LeakyReLU)
	setParam(t, net.Layer(0).Weight(), 1, 1)
	setParam(t, net.Layer(0).Bias(), 0)

	inputs := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	targets := matrix.FromSlice(2, 1, []float64{1, 4})

	// outputs 3 and 7: ((3-1)² + (7-4)²) / 2
	before := nn.StateVector(net)
	assert.Equal(t, 6.5, net.Cost(inputs, targets))
	assert.Equal(t, before, nn.StateVector(net), "cost leaves weights untouched")
}

func TestCost_DatasetMismatch(t *testing.T) {
	net := nn.NewMLP([]int{2, 1}, nn.Sigmoid)
	inputs, targets := andDataset()

	assert.Panics(t, func() { net.Cost(inputs, matrix.New(3, 1)) })
	assert.Panics(t, func() { net.Cost(matrix.New(4, 3), targets) })
	assert.Panics(t, func() { net.Cost(inputs, matrix.New(4, 2)) })
}

// TestTrain_ANDConverges checks that full-batch training drives the cost
// down monotonically on a linearly separable problem.
func TestTrain_ANDConverges(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		matrix.Seed(seed)
		net := nn.NewMLP([]int{2, 1}, nn.Sigmoid)
		inputs, targets := andDataset()

		start := net.Cost(inputs, targets)
		prev := start
		for epoch := 0; epoch < 1000; epoch++ {
			cost := net.MiniBatchUpdate(0.5, inputs, targets)
			assert.LessOrEqual(t, cost, prev+1e-12, "seed %d epoch %d", seed, epoch)
			prev = cost
		}

		final := net.Cost(inputs, targets)
		assert.Less(t, final, 0.05, "seed %d", seed)
		assert.Less(t, final, start, "seed %d", seed)

		// Outputs round to the truth table.
		for r := 0; r < inputs.Rows(); r++ {
			out := net.Forward(matrix.Row(inputs, r)).At(0, 0)
			assert.InDelta(t, targets.At(r, 0), out, 0.5, "seed %d row %d", seed, r)
		}
	}
}

func TestTrain_MatchesRepeatedMiniBatchUpdate(t *testing.T) {
	matrix.Seed(5)
	sizes := []int{2, 3, 1}
	a := nn.NewMLP(sizes, nn.LeakyReLU, nn.Sigmoid)
	b := twin(t, a, sizes, nn.LeakyReLU, nn.Sigmoid)
	inputs, targets := andDataset()

	a.Train(3, 0.1, inputs, targets)
	for range 3 {
		b.MiniBatchUpdate(0.1, inputs, targets)
	}

	assert.Equal(t, nn.StateVector(b), nn.StateVector(a))

	before := nn.StateVector(a)
	a.Train(0, 0.1, inputs, targets)
	assert.Equal(t, before, nn.StateVector(a))
}

func TestMiniBatchUpdate_ReturnsPreUpdateCost(t *testing.T) {
	matrix.Seed(6)
	net := nn.NewMLP([]int{2, 2, 1}, nn.Sigmoid)
	inputs, targets := andDataset()

	want := net.Cost(inputs, targets)
	got := net.MiniBatchUpdate(0.5, inputs, targets)
	assert.InDelta(t, want, got, 1e-15)
	assert.NotEqual(t, want, net.Cost(inputs, targets))
}

// TestAccumulateGradients_MeanOfRows checks that a batch gradient is the
// average of the single-row gradients.
func TestAccumulateGradients_MeanOfRows(t *testing.T) {
	matrix.Seed(7)
	net := nn.NewMLP([]int{2, 3, 2}, nn.Sigmoid, nn.LeakyReLU)
	inputs := matrix.FromSlice(3, 2, []float64{0.1, 0.2, -0.3, 0.4, 0.5, -0.6})
	targets := matrix.FromSlice(3, 2, []float64{1, 0, 0, 1, 0.5, 0.5})
	before := nn.StateVector(net)

	var sum []float64
	var costSum float64
	for r := 0; r < inputs.Rows(); r++ {
		costSum += net.AccumulateGradients(
			matrix.SliceRows(inputs, r, r+1),
			matrix.SliceRows(targets, r, r+1),
		)
		g := gradVector(net)
		if sum == nil {
			sum = make([]float64, len(g))
		}
		for i, v := range g {
			sum[i] += v
		}
	}

	cost := net.AccumulateGradients(inputs, targets)
	batch := gradVector(net)
	require.Len(t, batch, len(sum))
	for i := range sum {
		assert.InDelta(t, sum[i]/3, batch[i], 1e-12, "gradient %d", i)
	}
	assert.InDelta(t, costSum/3, cost, 1e-12)
	assert.Equal(t, before, nn.StateVector(net), "accumulation leaves weights untouched")
}

// costGradient estimates d(Cost)/d(params) by central differences.
func costGradient(t *testing.T, net *nn.Network, inputs, targets *matrix.Matrix) []float64 {
	t.Helper()
	x := nn.StateVector(net)
	f := func(params []float64) float64 {
		require.NoError(t, nn.LoadStateVector(net, params))
		return net.Cost(inputs, targets)
	}
	grad := fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central, Step: 1e-6})
	require.NoError(t, nn.LoadStateVector(net, x))
	return grad
}

func TestAccumulateGradients_MatchesFiniteDifferences(t *testing.T) {
	matrix.Seed(8)
	net := nn.NewMLP([]int{2, 3, 1}, nn.Sigmoid)
	inputs, targets := andDataset()

	numeric := costGradient(t, net, inputs, targets)
	net.AccumulateGradients(inputs, targets)

	assert.InDeltaSlice(t, numeric, gradVector(net), 1e-7)
}

// TestAccumulateGradients_LeakyReLUOutputSeed checks that a LeakyReLU
// output layer is seeded with the plain error, which yields half the
// gradient of the squared error.
func TestAccumulateGradients_LeakyReLUOutputSeed(t *testing.T) {
	matrix.Seed(9)
	net := nn.NewMLP([]int{2, 3, 1}, nn.Sigmoid, nn.LeakyReLU)
	inputs, targets := andDataset()

	numeric := costGradient(t, net, inputs, targets)
	net.AccumulateGradients(inputs, targets)

	analytic := gradVector(net)
	for i := range analytic {
		analytic[i] *= 2
	}
	assert.InDeltaSlice(t, numeric, analytic, 1e-7)
}

func TestFit_Converges(t *testing.T) {
	for _, batch := range []int{1, 3, 4} {
		matrix.Seed(uint64(10 + batch))
		net := nn.NewMLP([]int{2, 1}, nn.Sigmoid)
		inputs, targets := andDataset()

		net.Fit(1000, 0.5, batch, inputs.Clone(), targets.Clone())

		assert.Less(t, net.Cost(inputs, targets), 0.05, "batch %d", batch)
	}
}

func TestFit_KeepsRowsPaired(t *testing.T) {
	matrix.Seed(12)
	net := nn.NewMLP([]int{2, 1}, nn.Sigmoid)
	inputs, targets := andDataset()

	net.Fit(5, 0.5, 2, inputs, targets)

	for r := 0; r < inputs.Rows(); r++ {
		want := 0.0
		if inputs.At(r, 0) == 1 && inputs.At(r, 1) == 1 {
			want = 1
		}
		assert.Equal(t, want, targets.At(r, 0), "row %d", r)
	}
}

// TestFit_ShortLastBatch checks that an epoch over five rows with batch
// size two performs updates on rows [0,2), [2,4) and [4,5) of the
// shuffled data, the last averaged over one row.
func TestFit_ShortLastBatch(t *testing.T) {
	matrix.Seed(13)
	sizes := []int{2, 2, 1}
	a := nn.NewMLP(sizes, nn.Sigmoid)
	b := twin(t, a, sizes, nn.Sigmoid)

	inA, tgA := oddDataset()
	matrix.Seed(99)
	a.Fit(1, 0.3, 2, inA, tgA)

	inB, tgB := oddDataset()
	matrix.Seed(99)
	matrix.ShufflePaired(inB, tgB)
	for _, span := range [][2]int{{0, 2}, {2, 4}, {4, 5}} {
		b.MiniBatchUpdate(0.3,
			matrix.SliceRows(inB, span[0], span[1]),
			matrix.SliceRows(tgB, span[0], span[1]),
		)
	}

	assert.Equal(t, nn.StateVector(b), nn.StateVector(a))
	assert.True(t, matrix.Equal(inB, inA))
}

func TestFit_BatchSizeOutOfRange(t *testing.T) {
	net := nn.NewMLP([]int{2, 1}, nn.Sigmoid)
	inputs, targets := andDataset()

	for _, batch := range []int{0, -1, 5} {
		assert.Panics(t, func() { net.Fit(1, 0.1, batch, inputs, targets) }, "batch %d", batch)
	}

	// The full dataset is a valid batch.
	assert.NotPanics(t, func() { net.Fit(1, 0.1, 4, inputs, targets) })
}
