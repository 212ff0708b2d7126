// Package nn implements dense feed-forward networks trained by mini-batch
// gradient descent on mean squared error.
//
// The package provides:
//   - Activation: the closed set of element-wise nonlinearities (Sigmoid, LeakyReLU)
//   - Parameter: a trainable matrix paired with its gradient accumulator
//   - Dense: fully connected layer with cached activations and scratch buffers
//   - Network: ordered stack of Dense layers with forward/backward passes,
//     cost evaluation, mini-batch updates and the Fit/Train loops
//   - Save/Load: flat float64 persistence of every parameter
//
// All computation is single-threaded and allocation-free after
// construction: every buffer a layer needs is allocated once in NewDense.
package nn

import "github.com/born-ml/densenet/internal/matrix"

// Module is implemented by Dense and Network.
//
// Parameters returns the trainable parameters in persistence order: for
// every layer, its weight followed by its bias.
type Module interface {
	// Forward computes the output for a single 1×in input row. The
	// returned matrix is owned by the module and overwritten by the next
	// call.
	Forward(input *matrix.Matrix) *matrix.Matrix

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter
}

// NumParams returns the total number of scalar parameters in m.
func NumParams(m Module) int {
	n := 0
	for _, p := range m.Parameters() {
		n += p.Value().Len()
	}
	return n
}
