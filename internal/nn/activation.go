package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/densenet/internal/matrix"
)

// Activation selects the element-wise nonlinearity applied by a Dense
// layer after its affine transform.
type Activation int

// Supported activations.
const (
	// Sigmoid applies σ(x) = 1 / (1 + exp(-x)).
	Sigmoid Activation = iota

	// LeakyReLU applies x for x > 0 and x*matrix.LeakyReLUSlope otherwise.
	LeakyReLU
)

// String returns the activation name accepted by ParseActivation.
func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case LeakyReLU:
		return "relu"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// ParseActivation maps a name ("sigmoid", "relu", "leaky-relu") to an
// Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return Sigmoid, nil
	case "relu", "leaky-relu", "leakyrelu":
		return LeakyReLU, nil
	default:
		return 0, fmt.Errorf("unknown activation %q (want sigmoid or relu)", name)
	}
}

// transform is an in-place element-wise matrix operation.
type transform func(m *matrix.Matrix)

// transforms returns the activation and the derivative-from-output pair.
// The derivative expects a matrix that already holds activated values.
//
// Panics on an activation outside the defined set.
func (a Activation) transforms() (activate, derivative transform) {
	switch a {
	case Sigmoid:
		return matrix.Sigmoid, matrix.SigmoidDerivative
	case LeakyReLU:
		return matrix.LeakyReLU, matrix.LeakyReLUDerivative
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// seedScale is the factor applied to the output error to seed the
// backward pass: 2 for Sigmoid (d/dy of (y-t)²) and 1 for LeakyReLU.
func (a Activation) seedScale() float64 {
	switch a {
	case Sigmoid:
		return 2
	case LeakyReLU:
		return 1
	default:
		panic(fmt.Sprintf("nn: invalid activation function %d", int(a)))
	}
}
