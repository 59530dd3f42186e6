package transform

// Flat maps a uniform sample linearly onto the interval [min, max) with a
// constant Jacobian. It is used for non-resonant variables that need no
// peak removal, e.g. rapidities or angles.
type Flat struct {
	min float64
	max float64
}

// NewFlat creates a linear map onto [min, max). As with the other transforms
// the bounds are trusted; min > max simply yields a negative Jacobian.
func NewFlat(min, max float64) *Flat {
	return &Flat{min: min, max: max}
}

// Dimensions reports the number of uniform samples consumed per evaluation.
func (t *Flat) Dimensions() int { return 1 }

// Evaluate maps x = point[0] onto min + (max-min)·x. The Jacobian is the
// interval length, independent of x.
func (t *Flat) Evaluate(point []float64) (value, jacobian float64) {
	span := t.max - t.min
	return t.min + span*point[0], span
}
