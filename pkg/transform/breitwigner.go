package transform

import "math"

// BreitWigner maps a phase-space point distributed uniformly on [0,1) onto an
// invariant mass squared s distributed according to a relativistic
// Breit-Wigner of mass m and width Γ. The change of variable is
//
//	s(x) = m Γ tan(y(x)) + m², with y(x) = -atan(m/Γ) + (π/2 + atan(m/Γ)) x
//
// and has the effect of removing the peak associated to a resonant propagator
// from the integrand: weighted by the Jacobian ds/dx, a propagator factor
// integrated over s ∈ [0, ∞) becomes a constant over x ∈ [0,1).
type BreitWigner struct {
	mass  float64
	width float64
}

// NewBreitWigner creates the transform for a propagator of the given mass and
// width (GeV). Both are expected strictly positive; no validation is
// performed, non-positive values propagate as ordinary floating-point
// results from Evaluate.
func NewBreitWigner(mass, width float64) *BreitWigner {
	return &BreitWigner{mass: mass, width: width}
}

// Dimensions reports the number of uniform samples consumed per evaluation.
// A Breit-Wigner transform adds exactly one dimension to the integration.
func (t *BreitWigner) Dimensions() int { return 1 }

// Evaluate maps x = point[0] onto (s, ds/dx). For x ∈ [0,1) the intermediate
// angle stays strictly inside (-π/2, π/2), so the Jacobian is finite and
// positive; at x = 0 the mapping gives s = 0 exactly, and s diverges as
// x → 1, which is the integrable Breit-Wigner tail. Out-of-range samples are
// not rejected.
func (t *BreitWigner) Evaluate(point []float64) (s, jacobian float64) {
	x := point[0]
	span := math.Pi/2 + math.Atan(t.mass/t.width)
	y := -math.Atan(t.mass/t.width) + span*x

	s = t.mass*t.width*math.Tan(y) + t.mass*t.mass
	jacobian = span * t.mass * t.width / (math.Cos(y) * math.Cos(y))
	return s, jacobian
}

// Density returns the relativistic Breit-Wigner probability density at s,
// normalized to unity over s ∈ (-∞, ∞). Composed with Evaluate it yields a
// constant importance-sampling weight.
func (t *BreitWigner) Density(s float64) float64 {
	m2 := t.mass * t.mass
	mw := t.mass * t.width
	return mw / math.Pi / ((s-m2)*(s-m2) + mw*mw)
}
