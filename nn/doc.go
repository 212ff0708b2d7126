// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense feed-forward networks trained by mini-batch
// gradient descent on mean squared error.
//
// # Overview
//
// This package contains:
//   - Layers: Dense
//   - Activations: Sigmoid, LeakyReLU
//   - Models: Network, NewMLP
//   - Training: Fit (shuffled mini-batches), Train (full batch)
//   - Persistence: Save, Load, StateVector
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/densenet/matrix"
//	    "github.com/born-ml/densenet/nn"
//	)
//
//	func main() {
//	    inputs := matrix.FromSlice(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    targets := matrix.FromSlice(4, 1, []float64{0, 1, 1, 0})
//
//	    net := nn.NewMLP([]int{2, 3, 1}, nn.Sigmoid)
//	    net.Fit(5000, 1.0, 2, inputs, targets)
//
//	    fmt.Println(net.Cost(inputs, targets))
//	}
//
// # Layers
//
// Dense computes act(x · W + b) for one input row. Weights and biases
// start uniform in [-1, 1]:
//
//	layer := nn.NewDense(inSize, outSize, nn.LeakyReLU)
//
// # Networks
//
// Build networks from layers whose widths chain:
//
//	net := nn.NewNetwork(
//	    nn.NewDense(2, 4, nn.LeakyReLU),
//	    nn.NewDense(4, 1, nn.Sigmoid),
//	)
//
// or from a list of widths:
//
//	net := nn.NewMLP([]int{2, 4, 1}, nn.LeakyReLU, nn.Sigmoid)
//
// # Training
//
// Fit shuffles the dataset every epoch and steps once per batch; Train
// steps once per epoch on the whole dataset. MiniBatchUpdate performs a
// single step and returns the batch cost measured before it.
//
// # Persistence
//
// Save writes every weight and bias as a flat sequence of float64 values;
// Load reads them back into a network of the same topology:
//
//	if err := nn.Save(net, "weights.bin"); err != nil {
//	    log.Fatal(err)
//	}
package nn
