package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"openflights/insight/internal/charts"
	"openflights/insight/internal/common"
	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/models/dtos"
	"openflights/insight/internal/services"
)

func (h *Handlers) view(r *http.Request) (*services.View, error) {
	return h.deps.Services.Dashboard.Build(
		r.Context(),
		reqctx.GetSessionID(r.Context()),
		r.URL.Query().Get("category"),
	)
}

// CategoriesHandler handles GET /api/v1/categories
func (h *Handlers) CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Filter options", dtos.CategoriesResponse{Options: view.Options})
	}
}

// RoutesHandler handles GET /api/v1/routes
func (h *Handlers) RoutesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Routes", dtos.RoutesResponse{
			Category: view.Category,
			Count:    view.Routes.Len(),
			Routes:   view.Routes.Routes(),
		})
	}
}

// SummaryHandler handles GET /api/v1/summary
func (h *Handlers) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Summary", dtos.SummaryResponse{
			Category:          view.Category,
			Summary:           view.Summary,
			MeanDistanceLabel: view.Summary.MeanDistanceLabel(),
		})
	}
}

// InsightsHandler handles GET /api/v1/insights?n=5
func (h *Handlers) InsightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		n := dataset.DefaultInsightRows
		if raw := r.URL.Query().Get("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				common.RespondError(w, initTime, "n must be a positive integer", http.StatusBadRequest)
				return
			}
			n = parsed
		}

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Insights", dtos.InsightsResponse{
			Category: view.Category,
			Longest:  dataset.Longest(view.Routes, n).Routes(),
			Shortest: dataset.Shortest(view.Routes, n).Routes(),
		})
	}
}

// ShareViewHandler handles GET /api/v1/charts/share
func (h *Handlers) ShareViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Category share", charts.ShareByCategory(view.Routes))
	}
}

// MeanDistanceViewHandler handles GET /api/v1/charts/mean-distance
func (h *Handlers) MeanDistanceViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Mean distance by category", charts.MeanDistanceByCategory(view.Routes))
	}
}

// ExportHandler handles GET /api/v1/export.csv
func (h *Handlers) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		category := r.URL.Query().Get("category")

		// Buffer so storage errors still get a JSON envelope.
		var buf bytes.Buffer
		if err := h.deps.Services.Dashboard.Export(r.Context(), reqctx.GetSessionID(r.Context()), category, &buf); err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondFile(w, "text/csv", "routes.csv", buf.Bytes())
	}
}
