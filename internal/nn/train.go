package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/matrix"
)

// AccumulateGradients computes the mean gradient of the batch without
// updating any weight.
//
// Every accumulator is zeroed; for each row the network runs Forward,
// seeds the shared gradient with the output error (times 2 when the
// output layer is Sigmoid) and runs Backward. The accumulators are then
// divided by the batch's row count. Returns the batch's mean squared
// error measured before any update.
func (n *Network) AccumulateGradients(inputs, targets *matrix.Matrix) float64 {
	n.checkDataset("accumulate", inputs, targets)

	for _, layer := range n.layers {
		layer.ZeroGrad()
	}

	rows := inputs.Rows()
	var cost float64
	for r := 0; r < rows; r++ {
		n.Forward(matrix.Row(inputs, r))
		cost += n.seedGradient(matrix.Row(targets, r))
		n.Backward(n.grad)
	}

	for _, layer := range n.layers {
		layer.MeanGrad(rows)
	}
	return cost / float64(rows)
}

// MiniBatchUpdate performs one gradient descent step on a batch: the
// mean gradient from AccumulateGradients is applied to every layer with
// learning rate lr. Returns the batch cost measured before the update.
func (n *Network) MiniBatchUpdate(lr float64, inputs, targets *matrix.Matrix) float64 {
	cost := n.AccumulateGradients(inputs, targets)
	for _, layer := range n.layers {
		layer.ApplyUpdate(lr)
	}
	return cost
}

// Fit trains for the given number of epochs with mini-batches of
// batchSize rows.
//
// Each epoch shuffles inputs and targets together (in place, keeping rows
// paired), splits them into consecutive batches of batchSize rows and
// calls MiniBatchUpdate on each in order. When the row count is not a
// multiple of batchSize the last batch is shorter and is averaged over
// its own row count.
//
// Panics unless 1 <= batchSize <= inputs.Rows().
func (n *Network) Fit(epochs int, lr float64, batchSize int, inputs, targets *matrix.Matrix) {
	n.checkDataset("fit", inputs, targets)

	rows := inputs.Rows()
	if batchSize < 1 || batchSize > rows {
		panic(&matrix.ShapeError{
			Op:      "fit",
			Msg:     "batch size out of range",
			Details: fmt.Sprintf("batch %d for %d rows", batchSize, rows),
			Err:     matrix.ErrBadShape,
		})
	}

	for range epochs {
		matrix.ShufflePaired(inputs, targets)

		for start := 0; start < rows; start += batchSize {
			end := min(start+batchSize, rows)
			n.MiniBatchUpdate(lr,
				matrix.SliceRows(inputs, start, end),
				matrix.SliceRows(targets, start, end),
			)
		}
	}
}

// Train runs full-batch gradient descent: one MiniBatchUpdate over the
// whole dataset per epoch, without shuffling.
func (n *Network) Train(epochs int, lr float64, inputs, targets *matrix.Matrix) {
	for range epochs {
		n.MiniBatchUpdate(lr, inputs, targets)
	}
}
