// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/matrix"
)

// Parameter represents a trainable matrix and its gradient accumulator.
//
// Example:
//
//	weight := layer.Weight()
//	w := weight.Value()  // the matrix used by Forward
//	g := weight.Grad()   // mean gradient of the last batch
//
// Methods:
//
//	Name() string
//	    Returns the parameter name ("weight" or "bias").
//
//	Value() *matrix.Matrix
//	    Returns the parameter matrix.
//
//	Grad() *matrix.Matrix
//	    Returns the gradient accumulator.
//
//	ZeroGrad()
//	    Clears the gradient accumulator.
//
//	Step(lr float64)
//	    Applies value -= grad * lr.
type Parameter = nn.Parameter

// NewParameter creates a parameter around value with a zeroed accumulator.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return nn.NewParameter(name, value)
}
