package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"openflights/insight/internal/api"
	"openflights/insight/internal/config"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/middleware"
)

// RegisterRoutes builds the full HTTP surface of the dashboard.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, gatherer prometheus.Gatherer, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// service routes
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Storage, cfg.DBDriver, upSince))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	handlers := api.NewHandlers(deps)
	uploadLimiter := middleware.NewRateLimiter(cfg.UploadRatePerSec, cfg.UploadBurst)

	// everything below reads or writes the session upload
	r.Group(func(session chi.Router) {
		session.Use(middleware.SessionMiddleware(cfg.SessionTTL))

		RegisterUIRoutes(session, deps, handlers, uploadLimiter)
		RegisterAPIRoutes(session, handlers, uploadLimiter)
	})

	return r
}
