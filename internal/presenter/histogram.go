package presenter

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Histogram is a fixed-bin histogram of sampled values.
type Histogram struct {
	Bins   []float64 // bin edges, len(Counts)+1 of them
	Counts []int
}

// NewHistogram creates an empty histogram with nbins equal-width bins
// covering [low, high).
func NewHistogram(low, high float64, nbins int) *Histogram {
	bins := make([]float64, nbins+1)
	db := (high - low) / float64(nbins)
	for i := range bins {
		bins[i] = low + db*float64(i)
	}
	return &Histogram{
		Bins:   bins,
		Counts: make([]int, nbins),
	}
}

// NewHistogramFor sizes the bins to the sample range and fills them.
func NewHistogramFor(values []float64, nbins int) *Histogram {
	h := NewHistogram(floats.Min(values), floats.Max(values), nbins)
	h.Fill(values)
	return h
}

// Add counts one value. Values outside the bin range are ignored, as are
// NaNs, which slip past both range comparisons.
func (h *Histogram) Add(v float64) {
	low := h.Bins[0]
	high := h.Bins[len(h.Bins)-1]
	if math.IsNaN(v) || v < low || v >= high {
		return
	}
	db := (high - low) / float64(len(h.Counts))
	i := int((v - low) / db)
	if i >= len(h.Counts) { // v just below high, rounded up
		i = len(h.Counts) - 1
	}
	h.Counts[i]++
}

func (h *Histogram) Fill(values []float64) {
	for _, v := range values {
		h.Add(v)
	}
}

// Total reports how many values landed inside the bin range.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Fprint writes the histogram in a readable per-bin format.
func (h *Histogram) Fprint(w io.Writer) {
	for i, c := range h.Counts {
		fmt.Fprintf(w, "[%.4g - %.4g): %d\n", h.Bins[i], h.Bins[i+1], c)
	}
}
