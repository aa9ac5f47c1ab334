package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistryObservations(t *testing.T) {
	m := NewMetricsRegistry(prometheus.NewRegistry())

	m.ObserveQuery("load_routes", 0.01, nil)
	m.ObserveQuery("load_routes", 0.02, errors.New("down"))
	m.ObserveUpload(3, nil)
	m.ObserveUpload(0, errors.New("bad file"))
	m.ObservePrediction("rule_based")
	m.SetRoutesLoaded(42)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("load_routes", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("load_routes", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsTotal.WithLabelValues(OutcomeError)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.UploadedRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PredictionsTotal.WithLabelValues("rule_based")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.RoutesLoaded))
}

func TestRegistryIsolatedPerRegisterer(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsRegistry(prometheus.NewRegistry())
		NewMetricsRegistry(prometheus.NewRegistry())
	})
}

func TestNilRegistryIsNoop(t *testing.T) {
	var m *MetricsRegistry
	assert.NotPanics(t, func() {
		m.ObserveQuery("load_routes", 0.1, nil)
		m.ObserveUpload(1, nil)
		m.ObservePrediction("linear_regression")
		m.SetRoutesLoaded(1)
	})
}
