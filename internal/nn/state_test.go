package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStateDict_Layout(t *testing.T) {
	net := newSeeded(t, []int{3, 4, 2}, 10)
	stateDict := net.StateDict()
	require.Len(t, stateDict, 4)

	r, c := stateDict["layer.0.weight"].Dims()
	assert.Equal(t, []int{4, 4}, []int{r, c})
	r, c = stateDict["layer.1.delta"].Dims()
	assert.Equal(t, []int{5, 2}, []int{r, c})

	// Row = source neuron, column = destination index.
	w := stateDict["layer.1.weight"]
	for row, n := range net.layers[1] {
		for col, conn := range n.connections {
			assert.Equal(t, conn.Weight(), w.At(row, col))
		}
	}

	// Returned matrices are copies.
	w.Set(0, 0, 123)
	assert.NotEqual(t, 123.0, net.layers[1][0].connections[0].Weight())
}

func TestLoadStateDict_RoundTrip(t *testing.T) {
	src := newSeeded(t, []int{2, 3, 1}, 1)
	for i := 0; i < 20; i++ {
		require.NoError(t, src.Train([]float64{1, 0}, []float64{1}))
	}

	dst := newSeeded(t, []int{2, 3, 1}, 2)
	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	for l := 0; l < 2; l++ {
		assert.True(t, mat.Equal(src.WeightMatrix(l), dst.WeightMatrix(l)))
		assert.True(t, mat.Equal(src.DeltaMatrix(l), dst.DeltaMatrix(l)))
	}

	a, err := src.Predict([]float64{0, 1})
	require.NoError(t, err)
	b, err := dst.Predict([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoadStateDict_Mismatch(t *testing.T) {
	net := newSeeded(t, []int{2, 3, 1}, 1)
	before := net.StateDict()

	missing := net.StateDict()
	delete(missing, "layer.1.delta")

	wrongShape := net.StateDict()
	wrongShape["layer.0.weight"] = mat.NewDense(2, 3, nil)

	// A valid first layer followed by a bad second one must not be applied partially.
	partial := newSeeded(t, []int{2, 3, 1}, 9).StateDict()
	partial["layer.1.weight"] = mat.NewDense(1, 1, nil)

	for name, sd := range map[string]map[string]*mat.Dense{
		"missing":     missing,
		"wrong shape": wrongShape,
		"partial":     partial,
	} {
		t.Run(name, func(t *testing.T) {
			err := net.LoadStateDict(sd)
			require.ErrorIs(t, err, ErrStateMismatch)
			for k, m := range before {
				assert.True(t, mat.Equal(m, net.StateDict()[k]), k)
			}
		})
	}
}
