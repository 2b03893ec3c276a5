package nn

import "math"

// TransferFunction is the neuron activation: the hyperbolic tangent.
//
// Mathematically (e^(2x) - 1) / (e^(2x) + 1). The rational form is
// evaluated on -2|x| through math.Expm1, which keeps small inputs precise
// and saturates large inputs to ±1 instead of producing Inf/Inf.
//
// Properties:
//   - f(0) = 0
//   - f(-x) = -f(x)
//   - range (-1, 1), monotonically increasing
func TransferFunction(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	// e^(-2|x|) - 1, in (-1, 0]
	m := math.Expm1(-2 * math.Abs(x))
	y := -m / (2 + m)
	if x < 0 {
		return -y
	}
	return y
}

// TransferFunctionDerivative returns 1 - y².
//
// y must be an already activated output (post-tanh), not a raw weighted
// sum: tanh'(z) = 1 - tanh(z)².
func TransferFunctionDerivative(y float64) float64 {
	return 1.0 - y*y
}
