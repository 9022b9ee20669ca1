package histplotter

import (
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// MakeHistogramPlot renders a histogram of hour-of-day values to a PDF.
func MakeHistogramPlot(values []float64, bins int, title, filename string) error {
	if len(values) == 0 {
		return errors.New("histplotter: no values to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time of day, (h)"
	p.Y.Label.Text = "Count"
	p.X.Min = 0
	p.X.Max = 24

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Wrap(err, "histplotter: cannot bin values")
	}
	p.Add(hist)

	// Create a PDF
	img := vgpdf.New(vg.Points(400), vg.Points(200))
	dc := draw.New(img)
	p.Draw(dc)

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err = img.WriteTo(w); err != nil {
		return errors.Wrapf(err, "histplotter: cannot write %s", filename)
	}
	return nil
}
