package nn

import (
	"gonum.org/v1/gonum/floats"
)

// Loss returns the mean squared error between the current Results and
// target.
//
// It reads the outputs of the last FeedForward and does not change the
// network. Returns ErrInvalidTargetSize on a length mismatch.
func (net *Network) Loss(target []float64) (float64, error) {
	if err := net.checkTarget(target); err != nil {
		return 0, err
	}
	d := floats.Distance(net.Results(), target, 2)
	return d * d / float64(len(target)), nil
}
