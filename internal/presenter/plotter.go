package presenter

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GenerateHistogram renders the values as a density-normalized histogram and
// writes it to outputPath (format chosen by extension, e.g. .pdf).
func GenerateHistogram(outputPath, title, xlabel string, values []float64, nbins int) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "density"

	vs := make(plotter.Values, len(values))
	copy(vs, values)
	hist, err := plotter.NewHist(vs, nbins)
	if err != nil {
		return err
	}
	hist.Normalize(1)
	p.Add(hist)

	return p.Save(vg.Points(400), vg.Points(200), outputPath)
}
