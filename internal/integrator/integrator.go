// Package integrator estimates integrals by plain Monte-Carlo over the unit
// hypercube spanned by a transform pipeline. Each drawn point is pushed
// through the pipeline; the integrand is evaluated at the mapped values and
// reweighted by the pipeline Jacobian.
package integrator

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"phasespace-go/internal/pipeline"
	"phasespace-go/pkg/randomuniform"
)

// Integrand evaluates the remainder of the integrand at the mapped stage
// values, one value per pipeline stage, in stage order.
type Integrand func(values []float64) float64

type Result struct {
	Value  float64
	StdErr float64
	Points int
}

// MonteCarlo is a plain Monte-Carlo estimator. Workers <= 0 uses all CPUs.
// The same Seed, Points and Workers reproduce the estimate exactly: worker w
// owns the point indices [w*chunk, (w+1)*chunk) and its own sample stream.
type MonteCarlo struct {
	Points  int
	Workers int
	Seed    uint64
}

// Integrate draws Points phase-space points, evaluates f through the
// pipeline and returns the mean weight with its standard error.
func (mc *MonteCarlo) Integrate(p *pipeline.Pipeline, f Integrand) (Result, error) {
	workers := mc.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := mc.Points
	dims := p.Dimensions()
	weights := make([]float64, n)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			gen := randomuniform.NewUniformRandGenerator(mc.Seed + uint64(w))
			point := make([]float64, dims)
			values := make([]float64, 0, 8)
			for i := lo; i < hi; i++ {
				gen.Point(point)
				outputs, jacobian, err := p.Run(point)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				values = values[:0]
				for _, o := range outputs {
					values = append(values, o.Value)
				}
				weights[i] = jacobian * f(values)
			}
		}(w, lo, hi)
	}
	wg.Wait()

	if firstErr != nil {
		return Result{}, firstErr
	}
	mean, std := stat.MeanStdDev(weights, nil)
	return Result{
		Value:  mean,
		StdErr: std / math.Sqrt(float64(n)),
		Points: n,
	}, nil
}
