package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"openflights/insight/internal/constants"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/models/dtos"
)

// RespondSuccess wraps data in the dashboard envelope. The status code
// defaults to 200.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeEnvelope(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	})
}

// RespondError writes an error envelope. Callers pass a message that is
// safe to show in the dashboard; internal errors are logged, not echoed.
func RespondError(w http.ResponseWriter, initTime time.Time, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeEnvelope(w, code, dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
	})
}

// RespondFile sends a rendered export or chart. A non-empty filename marks
// the body as a download.
func RespondFile(w http.ResponseWriter, contentType string, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	if _, err := w.Write(body); err != nil {
		logging.Warn("File response write failed", "content_type", contentType, "error", err)
	}
}

func writeEnvelope(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}
