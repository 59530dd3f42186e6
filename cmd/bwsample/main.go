// Command bwsample draws invariant-mass-squared samples through the
// Breit-Wigner transform and prints their distribution as a text histogram,
// together with the fraction that falls inside the plotted window.
package main

import (
	"flag"
	"fmt"
	"os"

	"phasespace-go/internal/logging"
	"phasespace-go/internal/presenter"
	"phasespace-go/pkg/randomuniform"
	"phasespace-go/pkg/transform"
)

func main() {
	mass := flag.Float64("mass", 80.419, "propagator mass (GeV)")
	width := flag.Float64("width", 2.0476, "propagator width (GeV)")
	n := flag.Int("n", 10000, "number of samples")
	bins := flag.Int("bins", 20, "number of histogram bins")
	seed := flag.Uint64("seed", 1, "random seed")
	window := flag.Float64("window", 10, "histogram half-width around the peak, in units of mass*width (0 = fit to samples)")
	flag.Parse()

	logging.InitFromEnv()
	logg := logging.L()
	logg.Debug("drawing samples", "mass", *mass, "width", *width, "n", *n, "seed", *seed)

	bw := transform.NewBreitWigner(*mass, *width)
	gen := randomuniform.NewUniformRandGenerator(*seed)

	samples := make([]float64, *n)
	for i := range samples {
		s, _ := bw.Evaluate([]float64{gen.Rand()})
		samples[i] = s
	}

	// Default window of ±10Γ around the peak; the tail beyond is counted,
	// not drawn. With -window 0 the bins stretch over the full sample range
	// instead, tail included.
	var h *presenter.Histogram
	if *window > 0 {
		m2 := *mass * *mass
		halfWidth := *window * *mass * *width
		h = presenter.NewHistogram(m2-halfWidth, m2+halfWidth, *bins)
		h.Fill(samples)
	} else {
		h = presenter.NewHistogramFor(samples, *bins)
	}

	fmt.Printf("Distribution of s for mass %g, width %g:\n", *mass, *width)
	h.Fprint(os.Stdout)
	fmt.Printf("\nTotal inside window: %d of %d\n", h.Total(), *n)
}
