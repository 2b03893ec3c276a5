package nn

// Connection is a weighted edge from a neuron to one neuron of the next layer.
//
// A connection is owned by its source neuron and addressed by the
// destination neuron's index within its layer. DeltaWeight holds the last
// update applied to Weight and feeds the momentum term of the next update.
type Connection struct {
	weight      float64
	deltaWeight float64
}

// NewConnection creates a connection with the given weight and delta.
func NewConnection(weight, deltaWeight float64) Connection {
	return Connection{weight: weight, deltaWeight: deltaWeight}
}

// Weight returns the connection weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// SetWeight replaces the connection weight.
func (c *Connection) SetWeight(w float64) {
	c.weight = w
}

// DeltaWeight returns the last update applied to the weight.
func (c *Connection) DeltaWeight() float64 {
	return c.deltaWeight
}

// SetDeltaWeight replaces the stored delta.
func (c *Connection) SetDeltaWeight(dw float64) {
	c.deltaWeight = dw
}
