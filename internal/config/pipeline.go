package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const SupportedSchema = "v1"

// StageSpec describes one transform stage of the pipeline YAML.
type StageSpec struct {
	Name string `koanf:"name"`
	Type string `koanf:"type"` // "breit_wigner" or "flat"

	// breit_wigner parameters
	Mass  float64 `koanf:"mass"`
	Width float64 `koanf:"width"`

	// flat parameters
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

type PipelineSpec struct {
	SchemaVersion string      `koanf:"schema_version"`
	Stages        []StageSpec `koanf:"stages"`
}

// LoadPipelineSpec merges the YAML description (if present) with env-vars
// (prefix `PHASESPACE_PIPELINE__`, delimiter `__`, names lowercased, e.g.
// PHASESPACE_PIPELINE__SCHEMA_VERSION -> schema_version) and validates
// schema_version.
func LoadPipelineSpec(path string) (PipelineSpec, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return PipelineSpec{}, err
		}
	}
	_ = k.Load(env.Provider("PHASESPACE_PIPELINE__", "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PHASESPACE_PIPELINE__"))
	}), nil)

	// schema version check, after env so overrides are validated too
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return PipelineSpec{}, fmt.Errorf("pipeline schema_version %q not supported (want %q)", sv, SupportedSchema)
	}

	var spec PipelineSpec
	if err := k.Unmarshal("", &spec); err != nil {
		return spec, err
	}
	if spec.SchemaVersion == "" {
		spec.SchemaVersion = SupportedSchema
	}
	return spec, nil
}
