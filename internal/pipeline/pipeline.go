// Package pipeline sequences sampling transforms over slices of a single
// phase-space point. Each stage consumes as many uniform samples as its
// transform declares; the pipeline reports the total dimension count so the
// host can size the sampling space before any evaluation.
package pipeline

import (
	"fmt"

	"phasespace-go/pkg/transform"
)

// Stage is one named transform in the chain. The name labels the stage's
// output so downstream consumers can refer to it.
type Stage struct {
	Name      string
	Transform transform.SamplingTransform
}

// Output is the result of one stage for one phase-space point.
type Output struct {
	Name     string
	Value    float64
	Jacobian float64
}

type Pipeline struct {
	stages []Stage
	dims   int
}

func New(stages ...Stage) *Pipeline {
	p := &Pipeline{stages: stages}
	for _, st := range stages {
		p.dims += st.Transform.Dimensions()
	}
	return p
}

// Dimensions reports the total number of uniform samples consumed per point.
func (p *Pipeline) Dimensions() int { return p.dims }

// Run evaluates every stage on its slice of the point and returns the named
// outputs together with the product of all stage Jacobians. The point must
// hold exactly Dimensions() samples; the individual transforms trust their
// inputs, so the length check lives here.
func (p *Pipeline) Run(point []float64) ([]Output, float64, error) {
	if len(point) != p.dims {
		return nil, 0, fmt.Errorf("pipeline: point has %d samples, want %d", len(point), p.dims)
	}

	outputs := make([]Output, len(p.stages))
	jacobian := 1.0
	offset := 0
	for i, st := range p.stages {
		n := st.Transform.Dimensions()
		v, j := st.Transform.Evaluate(point[offset : offset+n])
		outputs[i] = Output{Name: st.Name, Value: v, Jacobian: j}
		jacobian *= j
		offset += n
	}
	return outputs, jacobian, nil
}
