package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the insight dashboard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Business Metrics
	UploadsTotal     *prometheus.CounterVec
	UploadedRows     prometheus.Counter
	PredictionsTotal *prometheus.CounterVec
	RoutesLoaded     prometheus.Gauge
}

// NewMetricsRegistry registers every metric with reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insight_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "insight_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_db_queries_total",
				Help: "Total database queries by operation type and outcome",
			},
			[]string{"query_type", "outcome"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insight_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		UploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_uploads_total",
				Help: "Uploaded route files by outcome",
			},
			[]string{"outcome"},
		),
		UploadedRows: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_uploaded_rows_total",
				Help: "Total rows accepted from uploaded files",
			},
		),
		PredictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_predictions_total",
				Help: "Duration estimates served by strategy",
			},
			[]string{"strategy"},
		),
		RoutesLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "insight_routes_loaded",
				Help: "Rows returned by the most recent storage load",
			},
		),
	}
}

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// ObserveQuery records one storage call. Safe on a nil registry.
func (m *MetricsRegistry) ObserveQuery(queryType string, seconds float64, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.DBQueriesTotal.WithLabelValues(queryType, outcome).Inc()
	m.DBQueryDuration.WithLabelValues(queryType).Observe(seconds)
}

// ObserveUpload records an upload attempt and, on success, its row count.
func (m *MetricsRegistry) ObserveUpload(rows int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.UploadsTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.UploadsTotal.WithLabelValues(OutcomeOK).Inc()
	m.UploadedRows.Add(float64(rows))
}

// ObservePrediction counts an estimate served by the named strategy.
func (m *MetricsRegistry) ObservePrediction(strategy string) {
	if m == nil {
		return
	}
	m.PredictionsTotal.WithLabelValues(strategy).Inc()
}

// SetRoutesLoaded updates the loaded-routes gauge.
func (m *MetricsRegistry) SetRoutesLoaded(n int) {
	if m == nil {
		return
	}
	m.RoutesLoaded.Set(float64(n))
}
