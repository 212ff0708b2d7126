package matrix

import "math"

// LeakyReLUSlope is the factor applied to non-positive inputs by LeakyReLU.
const LeakyReLUSlope = 1e-13

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) to every entry of m in place.
func Sigmoid(m *Matrix) {
	Apply(m, sigmoid)
}

// SigmoidDerivative replaces every entry y of m, which must already hold
// sigmoid outputs, with y*(1-y).
func SigmoidDerivative(m *Matrix) {
	Apply(m, func(y float64) float64 {
		return y * (1 - y)
	})
}

// LeakyReLU maps every entry x of m to x when x > 0 and to x*LeakyReLUSlope
// otherwise, in place.
func LeakyReLU(m *Matrix) {
	Apply(m, func(x float64) float64 {
		if x <= 0 {
			return x * LeakyReLUSlope
		}
		return x
	})
}

// LeakyReLUDerivative replaces every entry y of m, which must already hold
// LeakyReLU outputs, with 1 when y > 0 and LeakyReLUSlope otherwise.
//
// The slope is positive, so a stored value keeps the sign of the input it
// came from and y > 0 holds exactly when the input was positive.
func LeakyReLUDerivative(m *Matrix) {
	Apply(m, func(y float64) float64 {
		if y > 0 {
			return 1
		}
		return LeakyReLUSlope
	})
}

// Apply replaces every entry x of m with f(x).
func Apply(m *Matrix, f func(float64) float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.Set(i, j, f(m.At(i, j)))
		}
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
