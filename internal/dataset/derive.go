package dataset

import (
	"math"

	"github.com/go-gota/gota/series"
)

// Category is the distance bucket of a route.
type Category string

const (
	CategoryUnknown Category = "Unknown"
	CategoryShort   Category = "Short"
	CategoryMedium  Category = "Medium"
	CategoryLong    Category = "Long"

	// CategoryAll is the filter value that keeps every row.
	CategoryAll = "All"
)

const (
	// CruiseSpeedKMH is the constant cruise speed behind every duration figure.
	CruiseSpeedKMH = 800.0

	shortHaulLimitKM = 1000
	longHaulLimitKM  = 5000
)

// Categorize buckets a distance: <1000 Short, [1000,5000] Medium, >5000 Long.
func Categorize(distanceKM *int) Category {
	switch {
	case distanceKM == nil:
		return CategoryUnknown
	case *distanceKM < shortHaulLimitKM:
		return CategoryShort
	case *distanceKM <= longHaulLimitKM:
		return CategoryMedium
	default:
		return CategoryLong
	}
}

// FlightDuration returns the duration in minutes at cruise speed, rounded half
// to even. Nil distance yields nil.
func FlightDuration(distanceKM *int) *int {
	if distanceKM == nil {
		return nil
	}
	minutes := int(math.RoundToEven(float64(*distanceKM) / CruiseSpeedKMH * 60))
	return &minutes
}

// Recompute derives flight_duration and distance_category from distance_km,
// overriding whatever values the rows carried.
func Recompute(d Dataset) Dataset {
	if d.frame.Ncol() == 0 {
		return Empty()
	}

	n := d.Len()
	durations := make([]interface{}, n)
	categories := make([]interface{}, n)

	dist := d.frame.Col(ColDistanceKM)
	for i := 0; i < n; i++ {
		km := cellInt(dist.Elem(i))
		durations[i] = intValue(FlightDuration(km))
		categories[i] = string(Categorize(km))
	}

	frame := d.frame.
		Mutate(series.New(durations, series.Int, ColFlightDuration)).
		Mutate(series.New(categories, series.String, ColDistanceCategory))
	return Dataset{frame: frame}
}
