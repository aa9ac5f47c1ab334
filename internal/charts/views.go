// Package charts turns a route dataset into chart views and PNG renderings.
package charts

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"openflights/insight/internal/dataset"
)

// ErrNoData is returned instead of rendering an empty chart.
var ErrNoData = errors.New("no data to chart")

// CategoryShare is one slice of the distance-category pie.
type CategoryShare struct {
	Category dataset.Category `json:"category"`
	Count    int              `json:"count"`
	Share    float64          `json:"share"`
}

// CategoryMean is one bar of the mean-distance chart.
type CategoryMean struct {
	Category       dataset.Category `json:"category"`
	MeanDistanceKM float64          `json:"mean_distance_km"`
	Routes         int              `json:"routes"`
}

// ShareByCategory counts rows per distance category, ordered by category name.
func ShareByCategory(d dataset.Dataset) []CategoryShare {
	routes := d.Routes()
	if len(routes) == 0 {
		return []CategoryShare{}
	}

	counts := make(map[dataset.Category]int)
	for _, r := range routes {
		counts[r.DistanceCategory]++
	}

	shares := make([]CategoryShare, 0, len(counts))
	for _, name := range dataset.Categories(d) {
		c := dataset.Category(name)
		shares = append(shares, CategoryShare{
			Category: c,
			Count:    counts[c],
			Share:    float64(counts[c]) / float64(len(routes)),
		})
	}
	return shares
}

// MeanDistanceByCategory averages non-null distances per category.
// Categories without any distance are left out.
func MeanDistanceByCategory(d dataset.Dataset) []CategoryMean {
	distances := make(map[dataset.Category][]float64)
	for _, r := range d.Routes() {
		if r.DistanceKM == nil {
			continue
		}
		distances[r.DistanceCategory] = append(distances[r.DistanceCategory], float64(*r.DistanceKM))
	}

	means := []CategoryMean{}
	for _, name := range dataset.Categories(d) {
		c := dataset.Category(name)
		xs := distances[c]
		if len(xs) == 0 {
			continue
		}
		means = append(means, CategoryMean{
			Category:       c,
			MeanDistanceKM: stat.Mean(xs, nil),
			Routes:         len(xs),
		})
	}
	return means
}
