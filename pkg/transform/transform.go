// Package transform provides change-of-variables mappings used by a
// Monte-Carlo phase-space integrator. Each transform consumes a fixed number
// of uniform samples from [0,1) and maps them onto a physical variable
// together with the Jacobian of the mapping, so the host can reweight the
// integrand after the change of variables.
package transform

// SamplingTransform is the contract between a transform and the host
// integration pipeline.
type SamplingTransform interface {
	// Dimensions reports how many independent uniform samples one
	// evaluation consumes. The host queries it once, before any
	// evaluation, to size the overall sampling space.
	Dimensions() int

	// Evaluate consumes Dimensions() entries of point and returns the
	// mapped value and the Jacobian d(value)/d(point).
	Evaluate(point []float64) (value, jacobian float64)
}
