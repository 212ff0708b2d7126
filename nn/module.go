// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/matrix"
)

// Module is the interface shared by Dense and Network.
//
// Every module implements:
//   - Forward: compute the output row for one input row
//   - Parameters: return all trainable parameters in persistence order
//
// Note: Module is a type alias so that internal implementations satisfy
// it without conversion.
type Module = nn.Module

// NumParams returns the total number of scalar parameters in m.
func NumParams(m Module) int {
	return nn.NumParams(m)
}

// StateVector returns every parameter value of m in persistence order.
func StateVector(m Module) []float64 {
	return nn.StateVector(m)
}

// LoadStateVector overwrites the parameters of m with values laid out as
// StateVector returns them.
func LoadStateVector(m Module, values []float64) error {
	return nn.LoadStateVector(m, values)
}

// Forward runs m on a single input row.
//
// Example:
//
//	out := nn.Forward(net, matrix.FromSlice(1, 2, []float64{1, 0}))
func Forward(m Module, input *matrix.Matrix) *matrix.Matrix {
	return m.Forward(input)
}
