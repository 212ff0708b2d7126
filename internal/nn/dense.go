package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/matrix"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: y = act(x · W + b)
// where:
//   - x is a single input row with shape [1, in]
//   - W is the weight matrix with shape [in, out]
//   - b is the bias row with shape [1, out]
//   - y is the output row with shape [1, out]
//
// Weight and bias start uniform in [-1, 1]. Batching happens one level
// up: Network feeds the rows of a batch through the layer one at a time
// while the layer sums their gradients in its accumulators.
//
// Example:
//
//	layer := nn.NewDense(2, 3, nn.Sigmoid)
//	out := layer.Forward(matrix.FromSlice(1, 2, []float64{0, 1}))
type Dense struct {
	inSize  int
	outSize int
	act     Activation

	activate   transform
	derivative transform

	weight *Parameter // [in, out]
	bias   *Parameter // [1, out]

	input  *matrix.Matrix // cached input of the last Forward, [1, in]
	output *matrix.Matrix // cached output of the last Forward, [1, out]

	inputGrad *matrix.Matrix // gradient w.r.t. the input, [1, in]
	tempDW    *matrix.Matrix // one sample's weight gradient, [in, out]
	tempDB    *matrix.Matrix // one sample's bias gradient, [1, out]
	deriv     *matrix.Matrix // activation derivative scratch, [1, out]
}

// NewDense creates a dense layer with inSize inputs and outSize outputs.
//
// Panics if a size is not positive or act is not a defined Activation.
func NewDense(inSize, outSize int, act Activation) *Dense {
	if inSize <= 0 || outSize <= 0 {
		panic(&matrix.ShapeError{
			Op:      "dense",
			Msg:     "layer sizes must be > 0",
			Details: fmt.Sprintf("in=%d out=%d", inSize, outSize),
			Err:     matrix.ErrBadShape,
		})
	}
	activate, derivative := act.transforms()

	return &Dense{
		inSize:     inSize,
		outSize:    outSize,
		act:        act,
		activate:   activate,
		derivative: derivative,
		weight:     NewParameter("weight", Uniform(inSize, outSize)),
		bias:       NewParameter("bias", Uniform(1, outSize)),
		input:      matrix.Zeros(1, inSize),
		output:     matrix.Zeros(1, outSize),
		inputGrad:  matrix.Zeros(1, inSize),
		tempDW:     matrix.Zeros(inSize, outSize),
		tempDB:     matrix.Zeros(1, outSize),
		deriv:      matrix.Zeros(1, outSize),
	}
}

// Forward computes act(input · W + b) for one [1, in] row.
//
// The input is copied into the layer's cache; the returned matrix is the
// layer's cached output and is overwritten by the next Forward.
func (d *Dense) Forward(input *matrix.Matrix) *matrix.Matrix {
	matrix.Copy(d.input, input)
	matrix.MulInto(d.output, d.input, d.weight.Value())
	matrix.Add(d.output, d.bias.Value())
	d.activate(d.output)
	return d.output
}

// Backward propagates grad, the [1, out] gradient arriving from the next
// layer (or the loss), through this layer.
//
// grad is multiplied in place by the activation derivative evaluated on
// the cached output. The sample's weight gradient inputᵀ · grad and bias
// gradient grad are added to the accumulators, and the gradient with
// respect to the input, grad · Wᵀ, is returned. The returned matrix is
// owned by the layer and overwritten by the next Backward.
func (d *Dense) Backward(grad *matrix.Matrix) *matrix.Matrix {
	matrix.Copy(d.deriv, d.output)
	d.derivative(d.deriv)
	matrix.MulElem(grad, d.deriv)

	matrix.MulInto(d.tempDW, matrix.T(d.input), grad)
	matrix.Copy(d.tempDB, grad)
	matrix.MulInto(d.inputGrad, grad, matrix.T(d.weight.Value()))

	d.weight.Accumulate(d.tempDW)
	d.bias.Accumulate(d.tempDB)

	return d.inputGrad
}

// ApplyUpdate performs W -= dW*lr and b -= db*lr.
func (d *Dense) ApplyUpdate(lr float64) {
	d.weight.Step(lr)
	d.bias.Step(lr)
}

// ZeroGrad clears the weight and bias accumulators.
func (d *Dense) ZeroGrad() {
	d.weight.ZeroGrad()
	d.bias.ZeroGrad()
}

// MeanGrad divides the accumulators by the batch row count.
func (d *Dense) MeanGrad(rows int) {
	d.weight.Mean(rows)
	d.bias.Mean(rows)
}

// Randomize redraws weight and bias uniformly from [-1, 1].
func (d *Dense) Randomize() {
	Reinitialize(d.weight, d.bias)
}

// Parameters returns [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weight returns the weight parameter.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// Input returns the input cached by the last Forward.
func (d *Dense) Input() *matrix.Matrix {
	return d.input
}

// Output returns the output cached by the last Forward.
func (d *Dense) Output() *matrix.Matrix {
	return d.output
}

// InputGrad returns the input gradient computed by the last Backward.
func (d *Dense) InputGrad() *matrix.Matrix {
	return d.inputGrad
}

// InSize returns the number of inputs.
func (d *Dense) InSize() int {
	return d.inSize
}

// OutSize returns the number of outputs.
func (d *Dense) OutSize() int {
	return d.outSize
}

// Activation returns the layer's activation.
func (d *Dense) Activation() Activation {
	return d.act
}
