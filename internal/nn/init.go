package nn

import (
	"math/rand/v2"
)

// newRand returns the weight initialization source for cfg.
//
// Unseeded configs draw their PCG state from the runtime's random source,
// so every network starts from different weights.
func newRand(cfg Config) *rand.Rand {
	if cfg.Seeded {
		return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Uniform creates n connections whose weight and delta are drawn from
// U[0, 1), weight first.
func Uniform(n int, r *rand.Rand) []Connection {
	conns := make([]Connection, n)
	for i := range conns {
		conns[i] = NewConnection(r.Float64(), r.Float64())
	}
	return conns
}
