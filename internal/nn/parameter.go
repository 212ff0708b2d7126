package nn

import "github.com/born-ml/densenet/internal/matrix"

// Parameter represents a trainable matrix in a neural network together
// with the accumulator that collects its gradient over a mini-batch.
//
// The accumulator is explicit state owned by the parameter: it is zeroed
// at the start of a batch (ZeroGrad), summed into once per sample
// (Accumulate), averaged at the end of the batch (Mean) and consumed by
// Step.
//
// Example:
//
//	w := nn.NewParameter("weight", matrix.New(2, 1))
//	w.ZeroGrad()
//	w.Accumulate(sampleGrad)
//	w.Mean(batchRows)
//	w.Step(0.1) // w -= grad * 0.1
type Parameter struct {
	name  string
	value *matrix.Matrix
	grad  *matrix.Matrix
}

// NewParameter creates a parameter around value with a zeroed accumulator
// of the same shape.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
		grad:  matrix.Zeros(value.Rows(), value.Cols()),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the gradient accumulator.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// ZeroGrad clears the gradient accumulator.
func (p *Parameter) ZeroGrad() {
	matrix.Fill(p.grad, 0)
}

// Accumulate adds one sample's gradient contribution to the accumulator.
func (p *Parameter) Accumulate(contribution *matrix.Matrix) {
	matrix.Add(p.grad, contribution)
}

// Mean divides the accumulator by the number of samples in the batch.
func (p *Parameter) Mean(rows int) {
	matrix.DivScalar(p.grad, float64(rows))
}

// Step applies value -= grad * lr over the parameter's full shape.
func (p *Parameter) Step(lr float64) {
	matrix.AddScaled(p.value, -lr, p.grad)
}
