// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal multilayer perceptron.
//
// # Overview
//
// A Network is built from a topology, the neuron count of every layer.
// Each layer carries one extra bias neuron with a constant output of 1.0,
// every neuron uses the tanh activation and training is error
// back-propagation with momentum.
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/nn"
//
//	func main() {
//	    net, err := nn.New([]int{2, 4, 1}, nn.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // One training step
//	    if err := net.FeedForward([]float64{1, 0}); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := net.BackProp([]float64{1}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Inference
//	    out, err := net.Predict([]float64{0, 1})
//	}
//
// # Configuration
//
// Learning rate (eta) and momentum (alpha) are fixed at construction:
//
//	cfg := nn.Config{Eta: 0.2, Alpha: 0.5}
//
// Weights start from U[0, 1) and are different on every run unless a seed
// is set:
//
//	net, err := nn.New(topology, nn.DefaultConfig().WithSeed(42))
//
// # Errors
//
// Size mismatches are reported with ErrInvalidInputSize and
// ErrInvalidTargetSize, bad topologies with ErrInvalidTopology. Use
// errors.Is to test for them.
//
// # Weights
//
// StateDict exports the weights and last deltas as gonum matrices, one
// pair per layer; LoadStateDict restores them:
//
//	state := net.StateDict()
//	w := state["layer.0.weight"] // rows: input neurons + bias
package nn
