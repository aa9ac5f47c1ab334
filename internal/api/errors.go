package api

import (
	"errors"
	"net/http"
	"time"

	"openflights/insight/internal/charts"
	"openflights/insight/internal/common"
	"openflights/insight/internal/constants"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/db"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/predict"
)

// StatusFor maps a pipeline error to its HTTP status and user message.
func StatusFor(err error) (int, string) {
	var connErr *db.ConnectivityError
	var parseErr *dataset.ParseError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &connErr):
		return http.StatusServiceUnavailable, constants.MsgStorageUnavailable
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, constants.MsgUploadTooLarge
	case errors.As(err, &parseErr):
		return http.StatusBadRequest, constants.MsgUploadParseFailed
	case errors.Is(err, predict.ErrInsufficientData):
		return http.StatusUnprocessableEntity, constants.MsgInsufficientData
	case errors.Is(err, charts.ErrNoData):
		return http.StatusNoContent, constants.MsgNoDataToChart
	default:
		return http.StatusInternalServerError, constants.MsgInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	code, msg := StatusFor(err)
	if code >= http.StatusInternalServerError {
		logging.Error("Request failed", "path", r.URL.Path, "status_code", code, "error", err)
	} else {
		logging.Warn("Request rejected", "path", r.URL.Path, "status_code", code, "error", err)
	}
	common.RespondError(w, initTime, msg, code)
}
