package randomuniform

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformRandGenerator draws phase-space samples distributed uniformly on
// [0, 1). A fixed seed gives a reproducible stream.
type UniformRandGenerator struct {
	dist distuv.Uniform
}

// NewUniformRandGenerator creates a new generator with its own PCG source.
func NewUniformRandGenerator(seed uint64) *UniformRandGenerator {
	return &UniformRandGenerator{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(seed, seed),
		},
	}
}

// Rand draws one sample.
func (g *UniformRandGenerator) Rand() float64 {
	return g.dist.Rand()
}

// RandN draws n samples.
func (g *UniformRandGenerator) RandN(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = g.dist.Rand()
	}
	return result
}

// Point fills dst with one phase-space point, one sample per integration
// dimension.
func (g *UniformRandGenerator) Point(dst []float64) {
	for i := range dst {
		dst[i] = g.dist.Rand()
	}
}
