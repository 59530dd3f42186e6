// Command bwintegrate integrates a relativistic Breit-Wigner propagator
// density over the invariant mass squared by mapping it through the
// arctangent change of variables, and compares the Monte-Carlo estimate to
// the analytic value. It also exports a histogram of the sampled s values.
package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"phasespace-go/internal/config"
	"phasespace-go/internal/integrator"
	"phasespace-go/internal/logging"
	"phasespace-go/internal/pipeline"
	"phasespace-go/internal/presenter"
	"phasespace-go/pkg/randomuniform"
	"phasespace-go/pkg/transform"
)

func main() {
	cfg := config.Parse()
	logging.Configure(cfg.LogLevel)
	logg := logging.L()
	logg.Info("starting integration", "config", cfg.ToString())

	var p *pipeline.Pipeline
	if cfg.PipelineFile != "" {
		spec, err := config.LoadPipelineSpec(cfg.PipelineFile)
		if err != nil {
			log.Fatalf("Failed to load pipeline description: %v", err)
		}
		p, err = pipeline.Compile(spec)
		if err != nil {
			log.Fatalf("Failed to compile pipeline: %v", err)
		}
	} else {
		p = pipeline.New(pipeline.Stage{
			Name:      "s",
			Transform: transform.NewBreitWigner(cfg.Mass, cfg.Width),
		})
	}
	logg.Info("pipeline ready", "dimensions", p.Dimensions())

	// The integrand is the propagator density at the first stage value; with
	// the matching transform in front the weights are flat in x.
	bw := transform.NewBreitWigner(cfg.Mass, cfg.Width)
	f := func(values []float64) float64 {
		return bw.Density(values[0])
	}

	mc := &integrator.MonteCarlo{
		Points:  cfg.NumPoints,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	}
	res, err := mc.Integrate(p, f)
	if err != nil {
		log.Fatalf("Integration failed: %v", err)
	}

	analytic := 0.5 + math.Atan(cfg.Mass/cfg.Width)/math.Pi
	fmt.Printf("estimate: %.6f +- %.3g (%d points)\n", res.Value, res.StdErr, res.Points)
	fmt.Printf("analytic: %.6f\n", analytic)

	samples := sampleFirstStage(p, cfg.NumPoints, cfg.Seed)
	window := (cfg.Mass + 10*cfg.Width) * (cfg.Mass + 10*cfg.Width)
	h := presenter.NewHistogram(0, window, cfg.Bins)
	h.Fill(samples)

	csvPath := filepath.Join(cfg.OutputDir, "s_hist.csv")
	if err := presenter.SaveHistogramCSV(h, csvPath); err != nil {
		log.Fatalf("Failed to save histogram CSV: %v", err)
	}
	pdfPath := filepath.Join(cfg.OutputDir, "s_hist.pdf")
	if err := presenter.GenerateHistogram(pdfPath, "Breit-Wigner sampled s", "s (GeV^2)", clip(samples, 0, window), cfg.Bins); err != nil {
		log.Fatalf("Failed to plot histogram: %v", err)
	}
	logg.Info("histogram written", "csv", csvPath, "pdf", pdfPath, "in_range", h.Total())
}

// sampleFirstStage draws points through the pipeline and keeps the first
// stage's mapped value of each.
func sampleFirstStage(p *pipeline.Pipeline, n int, seed uint64) []float64 {
	gen := randomuniform.NewUniformRandGenerator(seed)
	point := make([]float64, p.Dimensions())
	samples := make([]float64, n)
	for i := range samples {
		gen.Point(point)
		outputs, _, err := p.Run(point)
		if err != nil {
			log.Fatalf("Pipeline run failed: %v", err)
		}
		samples[i] = outputs[0].Value
	}
	return samples
}

// clip drops the far-tail samples so the plot stays readable; the Jacobian
// makes the tail arbitrarily long.
func clip(values []float64, low, high float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= low && v < high {
			kept = append(kept, v)
		}
	}
	return kept
}
