package nn

import (
	"fmt"

	"github.com/born-ml/densenet/internal/matrix"
)

// Network is an ordered stack of Dense layers.
//
// The output of layer i is the input of layer i+1; the network output is
// the last layer's output. A single [1, out] gradient buffer, sized to the
// last layer, is shared by every training sample.
//
// Example:
//
//	net := nn.NewNetwork(
//	    nn.NewDense(2, 4, nn.Sigmoid),
//	    nn.NewDense(4, 1, nn.Sigmoid),
//	)
//	net.Fit(5000, 1.0, 2, inputs, targets)
//	out := net.Forward(matrix.Row(inputs, 0))
type Network struct {
	layers []*Dense
	grad   *matrix.Matrix
}

// NewNetwork creates a network from layers in forward order.
//
// Panics if no layer is given or if a layer's input width differs from
// the previous layer's output width.
func NewNetwork(layers ...*Dense) *Network {
	if len(layers) == 0 {
		panic(&matrix.ShapeError{Op: "network", Msg: "at least one layer is required", Err: matrix.ErrBadShape})
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].InSize() != layers[i-1].OutSize() {
			panic(&matrix.ShapeError{
				Op:  "network",
				Msg: "layer widths do not chain",
				Details: fmt.Sprintf("layer %d outputs %d, layer %d expects %d",
					i-1, layers[i-1].OutSize(), i, layers[i].InSize()),
				Err: matrix.ErrShapeMismatch,
			})
		}
	}

	last := layers[len(layers)-1]
	return &Network{
		layers: layers,
		grad:   matrix.Zeros(1, last.OutSize()),
	}
}

// NewMLP builds a network with len(sizes)-1 layers, layer i mapping
// sizes[i] inputs to sizes[i+1] outputs.
//
// acts holds either one activation used by every layer or exactly one
// activation per layer.
//
// Example:
//
//	net := nn.NewMLP([]int{2, 3, 1}, nn.LeakyReLU, nn.Sigmoid)
func NewMLP(sizes []int, acts ...Activation) *Network {
	if len(sizes) < 2 {
		panic(&matrix.ShapeError{Op: "network", Msg: "need at least input and output sizes",
			Details: fmt.Sprintf("sizes=%v", sizes), Err: matrix.ErrBadShape})
	}
	count := len(sizes) - 1
	if len(acts) != 1 && len(acts) != count {
		panic(&matrix.ShapeError{Op: "network", Msg: "activation count does not match layer count",
			Details: fmt.Sprintf("%d activations for %d layers", len(acts), count), Err: matrix.ErrBadShape})
	}

	layers := make([]*Dense, count)
	for i := range layers {
		act := acts[0]
		if len(acts) == count {
			act = acts[i]
		}
		layers[i] = NewDense(sizes[i], sizes[i+1], act)
	}
	return NewNetwork(layers...)
}

// Forward feeds a [1, in] row through every layer and returns the last
// layer's output.
func (n *Network) Forward(input *matrix.Matrix) *matrix.Matrix {
	out := input
	for _, layer := range n.layers {
		out = layer.Forward(out)
	}
	return out
}

// Backward seeds the shared gradient buffer with initialGrad and
// propagates it through the layers in reverse order. Each layer's input
// gradient becomes the incoming gradient of the layer before it.
func (n *Network) Backward(initialGrad *matrix.Matrix) {
	matrix.Copy(n.grad, initialGrad)

	grad := n.grad
	for i := len(n.layers) - 1; i >= 0; i-- {
		grad = n.layers[i].Backward(grad)
	}
}

// Parameters returns the weight and bias of every layer in order.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2*len(n.layers))
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Randomize redraws every weight and bias uniformly from [-1, 1].
func (n *Network) Randomize() {
	for _, layer := range n.layers {
		layer.Randomize()
	}
}

// Output returns the last layer's cached output.
func (n *Network) Output() *matrix.Matrix {
	return n.last().Output()
}

// Layers returns the layers in forward order.
func (n *Network) Layers() []*Dense {
	return n.layers
}

// Layer returns the layer at index i.
//
// Panics if i is out of bounds.
func (n *Network) Layer(i int) *Dense {
	if i < 0 || i >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of bounds [0, %d)", i, len(n.layers)))
	}
	return n.layers[i]
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// InSize returns the input width of the first layer.
func (n *Network) InSize() int {
	return n.layers[0].InSize()
}

// OutSize returns the output width of the last layer.
func (n *Network) OutSize() int {
	return n.last().OutSize()
}

func (n *Network) last() *Dense {
	return n.layers[len(n.layers)-1]
}
