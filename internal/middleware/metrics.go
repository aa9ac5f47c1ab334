package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/metrics"
)

// MetricsMiddleware records HTTP metrics for each request
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metricsReg.HTTPRequestsInFlight.WithLabelValues(r.Method).Inc()
			defer metricsReg.HTTPRequestsInFlight.WithLabelValues(r.Method).Dec()

			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			// The pattern is only complete once chi has routed the request.
			routePattern := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				routePattern = rctx.RoutePattern()
			}
			if routePattern == "" {
				routePattern = NormalizeEndpoint(r.URL.Path)
			}

			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(wrapped.statusCode)

			metricsReg.HTTPRequestsTotal.WithLabelValues(
				routePattern,
				r.Method,
				statusCode,
			).Inc()

			metricsReg.HTTPRequestDuration.WithLabelValues(
				routePattern,
				r.Method,
			).Observe(duration)

			logging.WithRequest(
				reqctx.GetRequestID(r.Context()),
				reqctx.GetSessionID(r.Context()),
				routePattern,
			).Infow("HTTP request completed",
				"method", r.Method,
				"status_code", wrapped.statusCode,
				"duration_ms", int(duration*1000),
			)
		})
	}
}

// RequestIDMiddleware adds a request ID to the context if not present
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = "req-" + uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(reqctx.SetRequestID(r.Context(), requestID)))
	})
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = http.StatusOK
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}

// NormalizeEndpoint normalizes an endpoint path for metrics
// Removes IDs to avoid metric cardinality explosion
func NormalizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if isIDLike(part) {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

// isIDLike checks if a string looks like an ID (numeric or UUID)
func isIDLike(s string) bool {
	if s == "" {
		return false
	}
	if _, err := uuid.Parse(s); err == nil && len(s) == 36 {
		return true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
