package api

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"openflights/insight/internal/charts"
	"openflights/insight/internal/common"
	"openflights/insight/internal/services"
)

type pngRenderer func(buf *bytes.Buffer, view *services.View) error

// chartImage renders a PNG for the request's view. An empty view yields
// 204 No Content instead of an empty chart.
func (h *Handlers) chartImage(render pngRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		view, err := h.view(r)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		var buf bytes.Buffer
		if err := render(&buf, view); err != nil {
			if errors.Is(err, charts.ErrNoData) {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondFile(w, "image/png", "", buf.Bytes())
	}
}

// SharePNGHandler handles GET /charts/share.png
func (h *Handlers) SharePNGHandler() http.HandlerFunc {
	return h.chartImage(func(buf *bytes.Buffer, view *services.View) error {
		return charts.RenderShare(buf, charts.ShareByCategory(view.Routes))
	})
}

// MeanDistancePNGHandler handles GET /charts/mean-distance.png
func (h *Handlers) MeanDistancePNGHandler() http.HandlerFunc {
	return h.chartImage(func(buf *bytes.Buffer, view *services.View) error {
		return charts.RenderMeanDistance(buf, charts.MeanDistanceByCategory(view.Routes))
	})
}

// DurationFitPNGHandler handles GET /charts/duration-fit.png
func (h *Handlers) DurationFitPNGHandler() http.HandlerFunc {
	return h.chartImage(func(buf *bytes.Buffer, view *services.View) error {
		return charts.RenderDurationFit(buf, view.Routes, view.Model)
	})
}
