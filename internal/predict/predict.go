// Package predict estimates flight duration in minutes from distance in
// kilometres. Two interchangeable strategies are provided: a linear model
// fitted on the dataset and a stateless rule based on cruise speed.
package predict

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"openflights/insight/internal/dataset"
)

var (
	// ErrInsufficientData is returned by Fit when no row has both a distance
	// and a duration.
	ErrInsufficientData = errors.New("not enough valid data for prediction")

	// ErrNotTrained is returned by Predict before a successful Fit. Callers
	// are expected to check Trained first.
	ErrNotTrained = errors.New("model has not been trained")
)

const (
	StrategyLinear    = "linear_regression"
	StrategyRuleBased = "rule_based"
)

// Estimator turns a distance into a duration estimate.
type Estimator interface {
	Name() string
	Estimate(distanceKM float64) (float64, error)
}

// LinearModel is an ordinary least squares fit of duration on distance.
type LinearModel struct {
	intercept float64
	slope     float64
	samples   int
	trained   bool
}

var _ Estimator = (*LinearModel)(nil)

// NewLinearModel returns an untrained model.
func NewLinearModel() *LinearModel {
	return &LinearModel{}
}

func (m *LinearModel) Name() string { return StrategyLinear }

// Fit trains on every row with both distance_km and flight_duration present.
// On ErrInsufficientData the model keeps its previous state.
func (m *LinearModel) Fit(d dataset.Dataset) error {
	var xs, ys []float64
	for _, r := range d.Routes() {
		if r.DistanceKM == nil || r.FlightDuration == nil {
			continue
		}
		xs = append(xs, float64(*r.DistanceKM))
		ys = append(ys, float64(*r.FlightDuration))
	}
	return m.FitPoints(xs, ys)
}

// FitPoints trains on paired samples. A single sample, or samples that all
// share one distance, give a flat line at the mean duration.
func (m *LinearModel) FitPoints(xs, ys []float64) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return ErrInsufficientData
	}

	if len(xs) == 1 || stat.Variance(xs, nil) == 0 {
		m.intercept, m.slope = stat.Mean(ys, nil), 0
	} else {
		m.intercept, m.slope = stat.LinearRegression(xs, ys, nil, false)
	}
	m.samples = len(xs)
	m.trained = true
	return nil
}

// Trained reports whether Predict may be called.
func (m *LinearModel) Trained() bool {
	return m != nil && m.trained
}

// Samples is the number of rows used by the last successful fit.
func (m *LinearModel) Samples() int {
	return m.samples
}

// Coefficients returns intercept and slope of the fitted line.
func (m *LinearModel) Coefficients() (intercept, slope float64) {
	return m.intercept, m.slope
}

// Predict returns the point estimate for distanceKM.
func (m *LinearModel) Predict(distanceKM float64) (float64, error) {
	if !m.Trained() {
		return math.NaN(), ErrNotTrained
	}
	return m.intercept + m.slope*distanceKM, nil
}

func (m *LinearModel) Estimate(distanceKM float64) (float64, error) {
	return m.Predict(distanceKM)
}

// RuleBased estimates duration as distance over a constant cruise speed.
type RuleBased struct {
	CruiseSpeedKMH float64
}

var _ Estimator = RuleBased{}

// NewRuleBased uses the dashboard-wide 800 km/h cruise speed.
func NewRuleBased() RuleBased {
	return RuleBased{CruiseSpeedKMH: dataset.CruiseSpeedKMH}
}

func (RuleBased) Name() string { return StrategyRuleBased }

// Minutes is distance / speed * 60, unrounded.
func (r RuleBased) Minutes(distanceKM float64) float64 {
	speed := r.CruiseSpeedKMH
	if speed <= 0 {
		speed = dataset.CruiseSpeedKMH
	}
	return distanceKM / speed * 60
}

func (r RuleBased) Estimate(distanceKM float64) (float64, error) {
	return r.Minutes(distanceKM), nil
}
