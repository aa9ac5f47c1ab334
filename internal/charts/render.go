package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 640
	chartHeight = 480
)

// RenderShare draws the category proportions as a PNG pie chart.
func RenderShare(w io.Writer, shares []CategoryShare) error {
	if len(shares) == 0 {
		return ErrNoData
	}

	values := make([]chart.Value, len(shares))
	for i, s := range shares {
		values[i] = chart.Value{
			Value: float64(s.Count),
			Label: fmt.Sprintf("%s (%.0f%%)", s.Category, s.Share*100),
		}
	}

	pie := chart.PieChart{
		Title:  "Distance category share",
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// RenderMeanDistance draws the mean distance per category as a PNG bar chart.
func RenderMeanDistance(w io.Writer, means []CategoryMean) error {
	if len(means) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, len(means))
	top := 0.0
	for i, m := range means {
		bars[i] = chart.Value{Value: m.MeanDistanceKM, Label: string(m.Category)}
		if m.MeanDistanceKM > top {
			top = m.MeanDistanceKM
		}
	}
	// go-chart rejects a zero-height range.
	if top <= 0 {
		top = 1
	}

	bar := chart.BarChart{
		Title:      "Average distance by category (km)",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   80,
		YAxis: chart.YAxis{
			Name:  "km",
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}
	return bar.Render(chart.PNG, w)
}
