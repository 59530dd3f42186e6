package config

import (
	"flag"
	"fmt"
)

type Config struct {
	Mass, Width  float64
	NumPoints    int
	Workers      int
	Seed         uint64
	Bins         int
	PipelineFile string
	OutputDir    string
	LogLevel     string
}

func Parse() *Config {
	cfg := &Config{}

	// define flags
	flag.Float64Var(&cfg.Mass, "mass", 80.419, "mass of the propagator to be integrated over (GeV)")
	flag.Float64Var(&cfg.Width, "width", 2.0476, "width of the propagator to be integrated over (GeV)")
	flag.IntVar(&cfg.NumPoints, "num-points", 100000, "number of phase-space points to draw")
	flag.IntVar(&cfg.Workers, "workers", 0, "number of worker goroutines (0 = all CPUs)")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "seed for the phase-space sample stream")
	flag.IntVar(&cfg.Bins, "bins", 50, "number of histogram bins for the sampled variable")
	flag.StringVar(&cfg.PipelineFile, "pipeline", "", "optional YAML pipeline description (overrides -mass/-width)")
	flag.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	flag.Parse()

	return cfg
}

func (cfg *Config) ToString() string {
	return fmt.Sprintf("mass=%g width=%g num-points=%d workers=%d seed=%d bins=%d pipeline=%q output-dir=%q",
		cfg.Mass, cfg.Width, cfg.NumPoints, cfg.Workers, cfg.Seed, cfg.Bins, cfg.PipelineFile, cfg.OutputDir)
}
