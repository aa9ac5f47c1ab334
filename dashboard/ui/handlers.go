package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"openflights/insight/internal/api"
	"openflights/insight/internal/common"
	"openflights/insight/internal/constants"
	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/services"
)

const previewRows = 20

// Uploader receives a multipart upload for the current session.
type Uploader interface {
	ReceiveUpload(w http.ResponseWriter, r *http.Request) (string, int, error)
}

// Notice is a banner shown above the dashboard.
type Notice struct {
	Level string
	Text  string
}

// UIHandler manages all UI routes
type UIHandler struct {
	dashboard *services.DashboardService
	uploader  Uploader
}

// NewUIHandler creates a new UI handler
func NewUIHandler(dashboard *services.DashboardService, uploader Uploader) *UIHandler {
	return &UIHandler{dashboard: dashboard, uploader: uploader}
}

// DashboardHandler renders GET /
func (h *UIHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, err := h.dashboard.Build(r.Context(), reqctx.GetSessionID(r.Context()), q.Get("category"))
	if err != nil {
		code, msg := api.StatusFor(err)
		logging.ForSession(reqctx.GetSessionID(r.Context())).Errorw("Dashboard build failed", "status_code", code, "error", err)
		http.Error(w, msg, code)
		return
	}

	var notices []Notice
	switch {
	case q.Get("uploaded") != "":
		notices = append(notices, Notice{Level: "ok", Text: "Uploaded " + q.Get("uploaded") + " rows."})
	case q.Get("upload_error") != "":
		notices = append(notices, Notice{Level: "error", Text: q.Get("upload_error")})
	}
	if view.Routes.Len() == 0 {
		notices = append(notices, Notice{Level: "warn", Text: constants.MsgNoDataToChart})
	}

	data := map[string]interface{}{
		"Title":    "Flight Route Insights",
		"View":     view,
		"HasData":  view.Routes.Len() > 0,
		"Longest":  view.Longest.Routes(),
		"Shortest": view.Shortest.Routes(),
		"Preview":  preview(view.Routes),

		"PredictKM":  "",
		"Predicted":  false,
		"EstimateKM": "",
		"Estimated":  false,
	}

	if km, ok, err := distanceParam(q, "predict_km"); err != nil {
		notices = append(notices, Notice{Level: "error", Text: constants.MsgInvalidDistance})
	} else if ok {
		data["PredictKM"] = km
		if view.ModelReady() {
			if minutes, err := view.Model.Predict(float64(km)); err == nil {
				data["Predicted"] = true
				data["PredictedMinutes"] = minutes
			}
		}
	}

	if km, ok, err := distanceParam(q, "estimate_km"); err != nil {
		notices = append(notices, Notice{Level: "error", Text: constants.MsgInvalidDistance})
	} else if ok {
		data["EstimateKM"] = km
		data["Estimated"] = true
		data["EstimatedMinutes"] = h.dashboard.Estimate(float64(km))
	}

	data["Notices"] = notices
	RenderTemplate(w, "dashboard.html", data)
}

// UploadHandler handles POST /ui/upload and redirects back to the dashboard.
func (h *UIHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	back := url.Values{}
	if c := r.URL.Query().Get("category"); c != "" {
		back.Set("category", c)
	}

	_, rows, err := h.uploader.ReceiveUpload(w, r)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		back.Set("upload_error", constants.MsgUploadMissingFile)
	case err != nil:
		_, msg := api.StatusFor(err)
		back.Set("upload_error", msg)
	default:
		back.Set("uploaded", strconv.Itoa(rows))
	}

	http.Redirect(w, r, "/?"+back.Encode(), http.StatusSeeOther)
}

// distanceParam reads an optional distance query value.
func distanceParam(q url.Values, key string) (int, bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	km, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	if err := common.ValidateDistance(km); err != nil {
		return 0, false, err
	}
	return km, true, nil
}

func preview(d dataset.Dataset) []dataset.Route {
	routes := d.Routes()
	if len(routes) > previewRows {
		routes = routes[:previewRows]
	}
	return routes
}
