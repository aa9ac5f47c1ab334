package routes

import (
	"github.com/go-chi/chi/v5"

	"openflights/insight/internal/api"
	"openflights/insight/internal/middleware"
)

// RegisterAPIRoutes registers the JSON API and the PNG chart routes
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, uploadLimiter *middleware.RateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/categories", handlers.CategoriesHandler())
		v1.Get("/routes", handlers.RoutesHandler())
		v1.Get("/summary", handlers.SummaryHandler())
		v1.Get("/insights", handlers.InsightsHandler())
		v1.Get("/charts/share", handlers.ShareViewHandler())
		v1.Get("/charts/mean-distance", handlers.MeanDistanceViewHandler())
		v1.Get("/export.csv", handlers.ExportHandler())

		v1.Post("/predict", handlers.PredictHandler())
		v1.Post("/estimate", handlers.EstimateHandler())

		v1.With(uploadLimiter.Middleware).Post("/upload", handlers.UploadHandler())
	})

	r.Route("/charts", func(c chi.Router) {
		c.Get("/share.png", handlers.SharePNGHandler())
		c.Get("/mean-distance.png", handlers.MeanDistancePNGHandler())
		c.Get("/duration-fit.png", handlers.DurationFitPNGHandler())
	})
}
