package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func weightKey(layer int) string { return fmt.Sprintf("layer.%d.weight", layer) }
func deltaKey(layer int) string  { return fmt.Sprintf("layer.%d.delta", layer) }

// WeightMatrix returns the weights leaving layer l as a matrix.
//
// Row r is source neuron r of layer l (the bias neuron is the last row),
// column c is the connection to neuron c of layer l+1. Valid for
// 0 <= l < NumLayers()-1.
func (net *Network) WeightMatrix(l int) *mat.Dense {
	return net.connMatrix(l, func(c *Connection) float64 { return c.weight })
}

// DeltaMatrix returns the last weight updates leaving layer l, laid out
// like WeightMatrix.
func (net *Network) DeltaMatrix(l int) *mat.Dense {
	return net.connMatrix(l, func(c *Connection) float64 { return c.deltaWeight })
}

func (net *Network) connMatrix(l int, get func(*Connection) float64) *mat.Dense {
	layer := net.layers[l]
	m := mat.NewDense(len(layer), net.topology[l+1], nil)
	for r := range layer {
		for c := range layer[r].connections {
			m.Set(r, c, get(&layer[r].connections[c]))
		}
	}
	return m
}

// StateDict returns every weight and delta matrix of the network.
//
// Keys are "layer.{i}.weight" and "layer.{i}.delta" for each layer i that
// has outgoing connections. The matrices are copies.
func (net *Network) StateDict() map[string]*mat.Dense {
	stateDict := make(map[string]*mat.Dense, 2*(len(net.layers)-1))
	for l := 0; l < len(net.layers)-1; l++ {
		stateDict[weightKey(l)] = net.WeightMatrix(l)
		stateDict[deltaKey(l)] = net.DeltaMatrix(l)
	}
	return stateDict
}

// LoadStateDict restores weights and deltas from a state dictionary.
//
// Every expected key must be present with the shape StateDict produces.
// Nothing is written unless the whole dictionary validates.
func (net *Network) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for l := 0; l < len(net.layers)-1; l++ {
		wantRows, wantCols := len(net.layers[l]), net.topology[l+1]
		for _, key := range []string{weightKey(l), deltaKey(l)} {
			m, ok := stateDict[key]
			if !ok || m == nil {
				return fmt.Errorf("%w: missing %s", ErrStateMismatch, key)
			}
			if r, c := m.Dims(); r != wantRows || c != wantCols {
				return fmt.Errorf("%w: %s shape mismatch: expected [%d %d], got [%d %d]",
					ErrStateMismatch, key, wantRows, wantCols, r, c)
			}
		}
	}

	for l := 0; l < len(net.layers)-1; l++ {
		w := stateDict[weightKey(l)]
		d := stateDict[deltaKey(l)]
		layer := net.layers[l]
		for r := range layer {
			for c := range layer[r].connections {
				layer[r].connections[c].weight = w.At(r, c)
				layer[r].connections[c].deltaWeight = d.At(r, c)
			}
		}
	}
	return nil
}
