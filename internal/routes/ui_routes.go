package routes

import (
	"github.com/go-chi/chi/v5"

	"openflights/insight/dashboard/ui"
	"openflights/insight/internal/api"
	"openflights/insight/internal/middleware"
)

// RegisterUIRoutes registers all UI-related routes
func RegisterUIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers, uploadLimiter *middleware.RateLimiter) {
	uiHandler := ui.NewUIHandler(deps.Services.Dashboard, handlers)

	r.Get("/", uiHandler.DashboardHandler)
	r.With(uploadLimiter.Middleware).Post("/ui/upload", uiHandler.UploadHandler)
}
