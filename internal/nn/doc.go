// Package nn implements a minimal multilayer perceptron.
//
// This package provides:
//   - Connection: weight and last delta of one edge
//   - Neuron: tanh activation, gradient rules and the momentum weight update
//   - Network: layered container running the forward and backward passes
//
// Connections are owned by their source neuron and addressed by the
// destination neuron's index in its layer. No neuron references another
// neuron, only positions in the layer slices.
package nn
