package transform

import (
	"math"
	"testing"
)

const Tolerance = 1e-5

func Equals(a, b float64) bool {
	delta := math.Abs(a - b)
	if delta < Tolerance {
		return true
	}
	return false
}

// TestBreitWignerDimensions checks that the transform always consumes exactly
// one uniform sample, independent of its parameters.
func TestBreitWignerDimensions(t *testing.T) {
	cases := []*BreitWigner{
		NewBreitWigner(1, 1),
		NewBreitWigner(80.419, 2.0476),
		NewBreitWigner(173, 1.5),
	}
	for _, bw := range cases {
		if bw.Dimensions() != 1 {
			t.Errorf("Expected 1 dimension, got %d", bw.Dimensions())
		}
	}
}

// TestBreitWignerAtZero checks that x = 0 maps onto s = 0: the lower edge of
// the uniform interval is the lower edge of the invariant mass range.
func TestBreitWignerAtZero(t *testing.T) {
	bw := NewBreitWigner(80.419, 2.0476)
	s, jacobian := bw.Evaluate([]float64{0})
	if math.Abs(s) > 1e-8 {
		t.Errorf("Expected s = 0 at x = 0, got %v", s)
	}
	if jacobian <= 0 {
		t.Errorf("Expected positive jacobian at x = 0, got %v", jacobian)
	}
}

// TestBreitWignerMidpoint checks the mapping at x = 0.5 for unit mass and
// width, where the angles reduce to exact fractions of π:
// s = 1 + tan(π/8) = √2 and ds/dx = (3π/4)/cos²(π/8) = 3π/(2+√2).
func TestBreitWignerMidpoint(t *testing.T) {
	bw := NewBreitWigner(1, 1)
	s, jacobian := bw.Evaluate([]float64{0.5})
	if !Equals(s, math.Sqrt2) {
		t.Errorf("Expected s = %v, got %v", math.Sqrt2, s)
	}
	wantJac := 3 * math.Pi / (2 + math.Sqrt2)
	if !Equals(jacobian, wantJac) {
		t.Errorf("Expected jacobian = %v, got %v", wantJac, jacobian)
	}
}

// TestBreitWignerMonotonic checks that s(x) is strictly increasing over
// [0,1), i.e. the change of variable is a bijection.
func TestBreitWignerMonotonic(t *testing.T) {
	bw := NewBreitWigner(91.1876, 2.4952)
	prev := math.Inf(-1)
	for i := 0; i < 1000; i++ {
		x := float64(i) / 1000
		s, jacobian := bw.Evaluate([]float64{x})
		if s <= prev {
			t.Fatalf("s not increasing at x = %v: %v <= %v", x, s, prev)
		}
		if jacobian <= 0 {
			t.Fatalf("non-positive jacobian at x = %v: %v", x, jacobian)
		}
		prev = s
	}
}

// TestBreitWignerJacobianMatchesDerivative compares the returned Jacobian
// against a central finite difference of s(x) for several parameter sets.
func TestBreitWignerJacobianMatchesDerivative(t *testing.T) {
	cases := []struct {
		mass, width, x float64
	}{
		{1, 1, 0.3},
		{80.419, 2.0476, 0.5},
		{173, 1.5, 0.1},
		{91.1876, 2.4952, 0.85},
	}
	const h = 1e-6
	for _, c := range cases {
		bw := NewBreitWigner(c.mass, c.width)
		_, jacobian := bw.Evaluate([]float64{c.x})
		sPlus, _ := bw.Evaluate([]float64{c.x + h})
		sMinus, _ := bw.Evaluate([]float64{c.x - h})
		fd := (sPlus - sMinus) / (2 * h)
		if math.Abs(fd-jacobian)/jacobian > 1e-4 {
			t.Errorf("mass=%v width=%v x=%v: jacobian %v, finite difference %v",
				c.mass, c.width, c.x, jacobian, fd)
		}
	}
}

// TestBreitWignerRepeatable checks that the evaluation is stateless: the same
// input gives bit-identical results across calls.
func TestBreitWignerRepeatable(t *testing.T) {
	bw := NewBreitWigner(80.419, 2.0476)
	s1, j1 := bw.Evaluate([]float64{0.37})
	s2, j2 := bw.Evaluate([]float64{0.37})
	if s1 != s2 || j1 != j2 {
		t.Errorf("Expected identical results, got (%v, %v) and (%v, %v)", s1, j1, s2, j2)
	}
}

// TestBreitWignerFlattensDensity checks the importance-sampling property: the
// Breit-Wigner density weighted by the Jacobian is constant in x, equal to
// (π/2 + atan(m/Γ))/π.
func TestBreitWignerFlattensDensity(t *testing.T) {
	bw := NewBreitWigner(80.419, 2.0476)
	want := (math.Pi/2 + math.Atan(80.419/2.0476)) / math.Pi
	for _, x := range []float64{0.01, 0.2, 0.5, 0.8, 0.99} {
		s, jacobian := bw.Evaluate([]float64{x})
		weight := bw.Density(s) * jacobian
		if math.Abs(weight-want) > 1e-9 {
			t.Errorf("x=%v: weight %v, want %v", x, weight, want)
		}
	}
}
