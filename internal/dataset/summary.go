package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary is the headline block of the dashboard.
type Summary struct {
	Count          int     `json:"count"`
	MeanDistanceKM float64 `json:"mean_distance_km"`
	MeanEcoScore   int     `json:"mean_eco_score"`
}

// MeanDistanceLabel renders the mean distance with zero decimals.
func (s Summary) MeanDistanceLabel() string {
	return fmt.Sprintf("%.0f", s.MeanDistanceKM)
}

// Summarize computes row count and the means of distance and eco score.
// Missing values are skipped; an empty dataset reports zeros.
func Summarize(d Dataset) Summary {
	n := d.Len()
	if n == 0 {
		return Summary{}
	}

	eco := d.frame.Col(ColEcoScore).Float()
	return Summary{
		Count:          n,
		MeanDistanceKM: meanSkipNaN(d.Distances()),
		MeanEcoScore:   int(meanSkipNaN(eco)),
	}
}

// meanSkipNaN averages the non-missing values; none at all gives 0.
func meanSkipNaN(xs []float64) float64 {
	present := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			present = append(present, x)
		}
	}
	if len(present) == 0 {
		return 0
	}
	return stat.Mean(present, nil)
}
