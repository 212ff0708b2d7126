package nn

import "github.com/born-ml/densenet/internal/matrix"

// Uniform returns a rows×cols matrix with entries drawn uniformly from
// [-1, 1]. Weights and biases of a Dense layer start this way.
func Uniform(rows, cols int) *matrix.Matrix {
	return matrix.New(rows, cols)
}

// Reinitialize redraws every parameter value uniformly from [-1, 1] and
// clears the accumulators.
func Reinitialize(params ...*Parameter) {
	for _, p := range params {
		matrix.Randomize(p.Value(), matrix.InitLow, matrix.InitHigh)
		p.ZeroGrad()
	}
}
