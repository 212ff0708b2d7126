// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/serialization"
)

// Activations

// Activation selects the nonlinearity of a Dense layer.
type Activation = nn.Activation

// Supported activations.
const (
	Sigmoid   = nn.Sigmoid
	LeakyReLU = nn.LeakyReLU
)

// ParseActivation maps "sigmoid", "relu" or "leaky-relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Layers

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a dense layer with weights and biases uniform in [-1, 1].
//
// Example:
//
//	layer := nn.NewDense(784, 16, nn.LeakyReLU)
func NewDense(inSize, outSize int, act Activation) *Dense {
	return nn.NewDense(inSize, outSize, act)
}

// Models

// Network is an ordered stack of Dense layers.
type Network = nn.Network

// NewNetwork creates a network from layers in forward order.
//
// Example:
//
//	net := nn.NewNetwork(
//	    nn.NewDense(784, 16, nn.LeakyReLU),
//	    nn.NewDense(16, 10, nn.Sigmoid),
//	)
func NewNetwork(layers ...*Dense) *Network {
	return nn.NewNetwork(layers...)
}

// NewMLP builds a network whose layer i maps sizes[i] to sizes[i+1].
//
// Example:
//
//	net := nn.NewMLP([]int{2, 3, 1}, nn.Sigmoid)
func NewMLP(sizes []int, acts ...Activation) *Network {
	return nn.NewMLP(sizes, acts...)
}

// Persistence

// Errors returned by Load.
var (
	ErrNoSavedWeights = serialization.ErrNoSavedWeights
	ErrTruncated      = serialization.ErrTruncated
)

// Save writes the parameters of m to path as flat float64 values.
func Save(m Module, path string) error {
	return nn.Save(m, path)
}

// Load reads the parameters of m from path.
//
// The file does not record the topology: m must have the shape of the
// network that was saved.
func Load(m Module, path string) error {
	return nn.Load(m, path)
}
