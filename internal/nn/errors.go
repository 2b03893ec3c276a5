package nn

import "errors"

// Common errors.
var (
	ErrInvalidTopology   = errors.New("invalid topology: need at least 2 layers of positive size")
	ErrInvalidInputSize  = errors.New("input size does not match input layer")
	ErrInvalidTargetSize = errors.New("target size does not match output layer")
	ErrInvalidConfig     = errors.New("invalid network config")
	ErrStateMismatch     = errors.New("state dict does not match network")
)
