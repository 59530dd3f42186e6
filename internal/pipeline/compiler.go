package pipeline

import (
	"errors"
	"fmt"

	"phasespace-go/internal/config"
	"phasespace-go/pkg/transform"
)

// Compile builds a runnable pipeline from a parsed YAML description.
func Compile(spec config.PipelineSpec) (*Pipeline, error) {
	if len(spec.Stages) == 0 {
		return nil, errors.New("pipeline: no stages")
	}

	stages := make([]Stage, 0, len(spec.Stages))
	for i, st := range spec.Stages {
		name := st.Name
		if name == "" {
			name = fmt.Sprintf("stage%d", i)
		}
		switch st.Type {
		case "breit_wigner":
			stages = append(stages, Stage{Name: name, Transform: transform.NewBreitWigner(st.Mass, st.Width)})
		case "flat":
			stages = append(stages, Stage{Name: name, Transform: transform.NewFlat(st.Min, st.Max)})
		default:
			return nil, fmt.Errorf("pipeline: unknown stage type %q", st.Type)
		}
	}
	return New(stages...), nil
}
