package api

import (
	"encoding/json"
	"net/http"
	"time"

	"openflights/insight/internal/common"
	"openflights/insight/internal/constants"
	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/models/dtos"
	"openflights/insight/internal/predict"
)

// PredictHandler handles POST /api/v1/predict
func (h *Handlers) PredictHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}
		if err := common.ValidateStruct(req); err != nil {
			common.RespondError(w, initTime, constants.MsgInvalidDistance, http.StatusBadRequest)
			return
		}

		minutes, model, err := h.deps.Services.Dashboard.Predict(
			r.Context(),
			reqctx.GetSessionID(r.Context()),
			req.Category,
			float64(req.DistanceKM),
		)
		if err != nil {
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Predicted flight duration", dtos.EstimateResponse{
			Strategy:   predict.StrategyLinear,
			DistanceKM: req.DistanceKM,
			Minutes:    minutes,
			Samples:    model.Samples(),
		})
	}
}

// EstimateHandler handles POST /api/v1/estimate
func (h *Handlers) EstimateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.EstimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}
		if err := common.ValidateStruct(req); err != nil {
			common.RespondError(w, initTime, constants.MsgInvalidDistance, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Estimated flight duration", dtos.EstimateResponse{
			Strategy:   predict.StrategyRuleBased,
			DistanceKM: req.DistanceKM,
			Minutes:    h.deps.Services.Dashboard.Estimate(float64(req.DistanceKM)),
		})
	}
}
