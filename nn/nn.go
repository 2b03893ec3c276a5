// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/nn"
)

// Network is a fully connected feed-forward perceptron with one bias
// neuron per layer.
type Network = nn.Network

// Layer is an ordered sequence of neurons; the last one is the bias neuron.
type Layer = nn.Layer

// Neuron holds an activation, a gradient and its outgoing connections.
type Neuron = nn.Neuron

// Connection is a weighted edge to a neuron of the next layer.
type Connection = nn.Connection

// Snapshot is the exported state of a neuron.
type Snapshot = nn.Snapshot

// Config holds the construction parameters of a Network.
type Config = nn.Config

// Default training coefficients.
const (
	DefaultEta   = nn.DefaultEta
	DefaultAlpha = nn.DefaultAlpha
)

// Errors returned by Network operations.
var (
	ErrInvalidTopology   = nn.ErrInvalidTopology
	ErrInvalidInputSize  = nn.ErrInvalidInputSize
	ErrInvalidTargetSize = nn.ErrInvalidTargetSize
	ErrInvalidConfig     = nn.ErrInvalidConfig
	ErrStateMismatch     = nn.ErrStateMismatch
)

// New builds a network from topology.
//
// Example:
//
//	net, err := nn.New([]int{3, 4, 2}, nn.DefaultConfig())
func New(topology []int, cfg Config) (*Network, error) {
	return nn.New(topology, cfg)
}

// DefaultConfig returns eta 0.50, alpha 0.25 and unseeded initialization.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// TransferFunction is the tanh activation.
func TransferFunction(x float64) float64 {
	return nn.TransferFunction(x)
}

// TransferFunctionDerivative returns 1 - y² for an activated output y.
func TransferFunctionDerivative(y float64) float64 {
	return nn.TransferFunctionDerivative(y)
}
