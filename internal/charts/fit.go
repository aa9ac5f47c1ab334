package charts

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"openflights/insight/internal/dataset"
	"openflights/insight/internal/predict"
)

// RenderDurationFit scatters distance against duration and, when the model
// is trained, overlays the fitted line.
func RenderDurationFit(w io.Writer, d dataset.Dataset, model *predict.LinearModel) error {
	var points plotter.XYs
	minX, maxX := 0.0, 0.0
	for _, r := range d.Routes() {
		if r.DistanceKM == nil || r.FlightDuration == nil {
			continue
		}
		x := float64(*r.DistanceKM)
		if len(points) == 0 || x < minX {
			minX = x
		}
		if len(points) == 0 || x > maxX {
			maxX = x
		}
		points = append(points, plotter.XY{X: x, Y: float64(*r.FlightDuration)})
	}
	if len(points) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Flight duration vs distance"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Distance (km)"
	p.Y.Label.Text = "Duration (min)"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(scatter)
	p.Legend.Add("routes", scatter)

	if model.Trained() {
		intercept, slope := model.Coefficients()
		line := plotter.NewFunction(func(x float64) float64 { return intercept + slope*x })
		line.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
		line.Width = vg.Points(1.5)
		line.XMin, line.XMax = minX, maxX
		p.Add(line)
		p.Legend.Add("linear fit", line)
	}

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
