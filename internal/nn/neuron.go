package nn

// Layer is an ordered sequence of neurons. The last neuron of every layer
// is the bias neuron, whose output is fixed at 1.0.
//
// Neurons never reference each other directly. A neuron in layer l reaches
// its incoming connections through the previous layer's neurons, at the
// slot given by its own index.
type Layer []Neuron

// Neuron holds an activation, a back-propagated gradient and the outgoing
// connections to every non-bias neuron of the next layer.
type Neuron struct {
	outputValue float64
	gradient    float64
	index       int
	eta         float64 // learning rate
	alpha       float64 // momentum
	connections []Connection
}

// Snapshot is the export view of a neuron, in the fixed order
// (Gradient, Connections, OutputValue, Index, Alpha, Eta).
//
// It is produced for persistence and debugging consumers and is never
// read back by the network itself.
type Snapshot struct {
	Gradient    float64
	Connections []Connection
	OutputValue float64
	Index       int
	Alpha       float64
	Eta         float64
}

// NewNeuron creates a neuron at position index of its layer with the given
// outgoing connections.
//
// The connection slice is owned by the neuron after the call.
func NewNeuron(index int, eta, alpha float64, connections []Connection) Neuron {
	return Neuron{
		index:       index,
		eta:         eta,
		alpha:       alpha,
		connections: connections,
	}
}

// FeedForward computes the neuron output from the previous layer.
//
// Every neuron of prev, bias included, contributes
// output * connections[n.index].weight. The bias neuron's constant 1.0
// times its learned weight is the additive bias term.
func (n *Neuron) FeedForward(prev Layer) {
	sum := 0.0
	for i := range prev {
		sum += prev[i].outputValue * prev[i].connections[n.index].weight
	}
	n.outputValue = TransferFunction(sum)
}

// CalculateOutputGradients sets the gradient of an output-layer neuron
// from its target value.
func (n *Neuron) CalculateOutputGradients(target float64) {
	delta := target - n.outputValue
	n.gradient = delta * TransferFunctionDerivative(n.outputValue)
}

// CalculateHiddenGradients sets the gradient of a hidden-layer neuron from
// the gradients of the next layer. The bias neuron of next is skipped.
func (n *Neuron) CalculateHiddenGradients(next Layer) {
	sum := 0.0
	for i := 0; i < len(next)-1; i++ {
		sum += n.connections[i].weight * next[i].gradient
	}
	n.gradient = sum * TransferFunctionDerivative(n.outputValue)
}

// UpdateInputWeights applies one momentum gradient-descent step to every
// connection of prev that targets this neuron, bias included:
//
//	delta  = eta * prev.output * gradient + alpha * oldDelta
//	weight = weight + delta
func (n *Neuron) UpdateInputWeights(prev Layer) {
	for i := range prev {
		c := &prev[i].connections[n.index]
		newDelta := n.eta*prev[i].outputValue*n.gradient + n.alpha*c.deltaWeight
		c.deltaWeight = newDelta
		c.weight += newDelta
	}
}

// Output returns the last computed activation.
func (n *Neuron) Output() float64 {
	return n.outputValue
}

func (n *Neuron) setOutput(v float64) {
	n.outputValue = v
}

// Gradient returns the last computed gradient.
func (n *Neuron) Gradient() float64 {
	return n.gradient
}

// Index returns the neuron's position within its layer.
func (n *Neuron) Index() int {
	return n.index
}

// Eta returns the learning rate.
func (n *Neuron) Eta() float64 {
	return n.eta
}

// Alpha returns the momentum coefficient.
func (n *Neuron) Alpha() float64 {
	return n.alpha
}

// Connections returns a copy of the outgoing connections.
func (n *Neuron) Connections() []Connection {
	out := make([]Connection, len(n.connections))
	copy(out, n.connections)
	return out
}

// Export returns a snapshot of the neuron state.
func (n *Neuron) Export() Snapshot {
	return Snapshot{
		Gradient:    n.gradient,
		Connections: n.Connections(),
		OutputValue: n.outputValue,
		Index:       n.index,
		Alpha:       n.alpha,
		Eta:         n.eta,
	}
}
