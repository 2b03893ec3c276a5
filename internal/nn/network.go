package nn

import (
	"fmt"
)

// Network is a fully connected feed-forward perceptron with one bias
// neuron per layer.
//
// Layers are stored as slices of neurons and neurons refer to their peers
// only by position, so the whole network is a tree of plain slices owned by
// the Network.
//
// A Network is not safe for concurrent use. For each training example call
// FeedForward and then BackProp; BackProp consumes the outputs of the
// preceding FeedForward.
//
// Example:
//
//	net, err := nn.New([]int{2, 4, 1}, nn.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	_ = net.FeedForward([]float64{1, 0})
//	_ = net.BackProp([]float64{1})
//	out := net.Results()
type Network struct {
	topology []int
	layers   []Layer
	cfg      Config
}

// New builds a network from topology, the neuron count of every layer
// excluding bias neurons.
//
// Layer i holds topology[i]+1 neurons; the last one is the bias neuron with
// a constant output of 1.0. Neurons of every layer but the last get one
// outgoing connection per non-bias neuron of the next layer, with weight
// and delta drawn from U[0, 1).
//
// Returns ErrInvalidTopology if topology has fewer than two layers or a
// non-positive layer size, and ErrInvalidConfig for out-of-range
// coefficients.
func New(topology []int, cfg Config) (*Network, error) {
	if err := validateTopology(topology); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := newRand(cfg)
	layers := make([]Layer, len(topology))
	for i, size := range topology {
		outputs := 0
		if i < len(topology)-1 {
			outputs = topology[i+1]
		}

		layer := make(Layer, size+1)
		for n := range layer {
			layer[n] = NewNeuron(n, cfg.Eta, cfg.Alpha, Uniform(outputs, r))
		}
		layer[size].setOutput(1.0)
		layers[i] = layer
	}

	return &Network{
		topology: append([]int(nil), topology...),
		layers:   layers,
		cfg:      cfg,
	}, nil
}

func validateTopology(topology []int) error {
	if len(topology) < 2 {
		return fmt.Errorf("%w: got %d layers", ErrInvalidTopology, len(topology))
	}
	for i, size := range topology {
		if size <= 0 {
			return fmt.Errorf("%w: layer %d has size %d", ErrInvalidTopology, i, size)
		}
	}
	return nil
}

// FeedForward loads input into the input layer and propagates it through
// every following layer.
//
// The input layer's bias neuron is left untouched. Returns
// ErrInvalidInputSize if len(input) != topology[0].
func (net *Network) FeedForward(input []float64) error {
	if len(input) != net.topology[0] {
		return fmt.Errorf("%w: got %d values, want %d", ErrInvalidInputSize, len(input), net.topology[0])
	}

	for i, v := range input {
		net.layers[0][i].setOutput(v)
	}

	for l := 1; l < len(net.layers); l++ {
		prev := net.layers[l-1]
		layer := net.layers[l]
		for n := 0; n < len(layer)-1; n++ {
			layer[n].FeedForward(prev)
		}
	}
	return nil
}

// BackProp computes gradients against target and updates every weight.
//
// Steps:
//  1. Output gradients for the non-bias output neurons.
//  2. Hidden gradients from the last hidden layer down to layer 1, for
//     every neuron including the bias neuron.
//  3. Weight updates from the output layer down to layer 1, for non-bias
//     neurons, against the previous layer.
//
// Returns ErrInvalidTargetSize if len(target) != topology[last]; the
// network is not modified in that case.
func (net *Network) BackProp(target []float64) error {
	if err := net.checkTarget(target); err != nil {
		return err
	}

	output := net.layers[len(net.layers)-1]
	for n := 0; n < len(output)-1; n++ {
		output[n].CalculateOutputGradients(target[n])
	}

	for l := len(net.layers) - 2; l > 0; l-- {
		hidden := net.layers[l]
		next := net.layers[l+1]
		for n := range hidden {
			hidden[n].CalculateHiddenGradients(next)
		}
	}

	for l := len(net.layers) - 1; l > 0; l-- {
		layer := net.layers[l]
		prev := net.layers[l-1]
		for n := 0; n < len(layer)-1; n++ {
			layer[n].UpdateInputWeights(prev)
		}
	}
	return nil
}

func (net *Network) checkTarget(target []float64) error {
	want := net.topology[len(net.topology)-1]
	if len(target) != want {
		return fmt.Errorf("%w: got %d values, want %d", ErrInvalidTargetSize, len(target), want)
	}
	return nil
}

// Results returns the outputs of the non-bias neurons of the last layer.
func (net *Network) Results() []float64 {
	output := net.layers[len(net.layers)-1]
	results := make([]float64, len(output)-1)
	for n := range results {
		results[n] = output[n].Output()
	}
	return results
}

// Predict runs FeedForward and returns Results.
func (net *Network) Predict(input []float64) ([]float64, error) {
	if err := net.FeedForward(input); err != nil {
		return nil, err
	}
	return net.Results(), nil
}

// Train performs a single training step on one example: FeedForward on
// input followed by BackProp on target.
//
// Both sizes are checked before anything is modified.
func (net *Network) Train(input, target []float64) error {
	if err := net.checkTarget(target); err != nil {
		return err
	}
	if err := net.FeedForward(input); err != nil {
		return err
	}
	return net.BackProp(target)
}

// Topology returns a copy of the layer sizes the network was built with.
func (net *Network) Topology() []int {
	return append([]int(nil), net.topology...)
}

// NumLayers returns the number of layers, input and output included.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns a copy of layer i, bias neuron included.
//
// The copy shares nothing with the network; mutating it has no effect.
func (net *Network) Layer(i int) Layer {
	src := net.layers[i]
	out := make(Layer, len(src))
	for n := range src {
		out[n] = src[n]
		out[n].connections = src[n].Connections()
	}
	return out
}

// Config returns the configuration the network was built with.
func (net *Network) Config() Config {
	return net.cfg
}
