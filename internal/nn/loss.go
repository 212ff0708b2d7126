package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/matrix"
)

// Cost returns the mean over rows of the summed squared error between
// the network output and the target row:
//
//	cost = (1/rows) Σ_r Σ_j (out_rj - target_rj)²
//
// Weights are not touched, but every layer's cached input and output are
// overwritten by the forward passes.
func (n *Network) Cost(inputs, targets *matrix.Matrix) float64 {
	n.checkDataset("cost", inputs, targets)

	var cost float64
	for r := 0; r < inputs.Rows(); r++ {
		out := n.Forward(matrix.Row(inputs, r))
		cost += squaredError(out, matrix.Row(targets, r))
	}
	return cost / float64(inputs.Rows())
}

// squaredError returns Σ_j (out_j - target_j)² for two [1, k] rows.
func squaredError(out, target *matrix.Matrix) float64 {
	var sum float64
	for j := 0; j < out.Cols(); j++ {
		t := out.At(0, j) - target.At(0, j)
		sum += t * t
	}
	return sum
}

// seedGradient writes the output error of the current sample into grad,
// scaled by the output activation's seed factor, and returns the sample's
// squared error.
func (n *Network) seedGradient(target *matrix.Matrix) float64 {
	out := n.Output()
	scale := n.last().Activation().seedScale()

	var sum float64
	for j := 0; j < out.Cols(); j++ {
		t := out.At(0, j) - target.At(0, j)
		sum += t * t
		n.grad.Set(0, j, scale*t)
	}
	return sum
}

// checkDataset panics unless inputs and targets have matching row counts
// and the network's input and output widths.
func (n *Network) checkDataset(op string, inputs, targets *matrix.Matrix) {
	if inputs.Rows() != targets.Rows() || inputs.Cols() != n.InSize() || targets.Cols() != n.OutSize() {
		panic(&matrix.ShapeError{
			Op:  op,
			Msg: "dataset does not match network",
			Details: fmt.Sprintf("inputs [%dx%d], targets [%dx%d], network %d -> %d",
				inputs.Rows(), inputs.Cols(), targets.Rows(), targets.Cols(), n.InSize(), n.OutSize()),
			Err: matrix.ErrShapeMismatch,
		})
	}
}
