package nn

import "fmt"

// Default training coefficients.
const (
	DefaultEta   = 0.50
	DefaultAlpha = 0.25
)

// Config holds the construction parameters of a Network.
//
// Eta and Alpha are copied into every neuron at construction and stay
// fixed for the lifetime of the network.
type Config struct {
	Eta    float64 // Learning rate, range (0, 1] (default: 0.50)
	Alpha  float64 // Momentum, range [0, 1) (default: 0.25)
	Seed   uint64  // Seed for weight initialization, used when Seeded is set
	Seeded bool    // Deterministic initialization from Seed
}

// DefaultConfig returns the default unseeded configuration.
func DefaultConfig() Config {
	return Config{
		Eta:   DefaultEta,
		Alpha: DefaultAlpha,
	}
}

// WithSeed returns a copy of c that initializes weights deterministically.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = seed
	c.Seeded = true
	return c
}

// Validate checks the coefficient ranges.
func (c Config) Validate() error {
	if !(c.Eta > 0 && c.Eta <= 1) {
		return fmt.Errorf("%w: eta %v outside (0, 1]", ErrInvalidConfig, c.Eta)
	}
	if !(c.Alpha >= 0 && c.Alpha < 1) {
		return fmt.Errorf("%w: alpha %v outside [0, 1)", ErrInvalidConfig, c.Alpha)
	}
	return nil
}
