package nn_test

import (
	"testing"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var xorSamples = []struct {
	input  []float64
	target []float64
}{
	{[]float64{0, 0}, []float64{0}},
	{[]float64{0, 1}, []float64{1}},
	{[]float64{1, 0}, []float64{1}},
	{[]float64{1, 1}, []float64{0}},
}

// trainXOR trains a [2,2,1] network for the given epochs and reports whether
// every output ended within tol of its target.
func trainXOR(t *testing.T, seed uint64, epochs int, tol float64) bool {
	t.Helper()
	net, err := nn.New([]int{2, 2, 1}, nn.DefaultConfig().WithSeed(seed))
	require.NoError(t, err)

	for epoch := 0; epoch < epochs; epoch++ {
		for _, s := range xorSamples {
			require.NoError(t, net.FeedForward(s.input))
			require.NoError(t, net.BackProp(s.target))
		}
	}

	for _, s := range xorSamples {
		out, err := net.Predict(s.input)
		require.NoError(t, err)
		require.Len(t, out, 1)
		if !floats.EqualApprox(out, s.target, tol) {
			t.Logf("seed %d: XOR%v = %.4f, want %v", seed, s.input, out[0], s.target[0])
			return false
		}
	}
	return true
}

// TestXOR_Converges trains XOR from several seeds. A 2-2-1 tanh network can
// land in a local minimum from some starting points, so several seeds are
// tried and at least one must converge.
func TestXOR_Converges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training test in short mode")
	}

	const seeds = 8
	converged := 0
	for seed := uint64(1); seed <= seeds; seed++ {
		if trainXOR(t, seed, 1000, 0.1) {
			converged++
		}
	}
	t.Logf("%d/%d seeds converged", converged, seeds)
	assert.GreaterOrEqual(t, converged, 1, "no seed learned XOR")
}
