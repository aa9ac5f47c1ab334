package api

import (
	"errors"
	"net/http"
	"time"

	"openflights/insight/internal/common"
	"openflights/insight/internal/constants"
	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/models/dtos"
)

// UploadHandler handles POST /api/v1/upload (multipart field "file")
func (h *Handlers) UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filename, rows, err := h.ReceiveUpload(w, r)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				common.RespondError(w, initTime, constants.MsgUploadMissingFile, http.StatusBadRequest)
				return
			}
			respondServiceError(w, r, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Upload merged into session", dtos.UploadResponse{
			Filename: filename,
			Rows:     rows,
		}, http.StatusCreated)
	}
}

// ReceiveUpload reads the multipart file and hands it to the dashboard
// service. The request body is capped at UploadMaxBytes. The HTML form
// shares this path.
func (h *Handlers) ReceiveUpload(w http.ResponseWriter, r *http.Request) (string, int, error) {
	if r.ContentLength > h.deps.UploadMaxBytes {
		return "", 0, &http.MaxBytesError{Limit: h.deps.UploadMaxBytes}
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.deps.UploadMaxBytes)
	if err := r.ParseMultipartForm(h.deps.UploadMaxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", 0, err
		}
		return "", 0, http.ErrMissingFile
	}

	file, header, err := r.FormFile(constants.UploadFormField)
	if err != nil {
		return "", 0, http.ErrMissingFile
	}
	defer file.Close()

	rows, err := h.deps.Services.Dashboard.Upload(r.Context(), reqctx.GetSessionID(r.Context()), header.Filename, file)
	return header.Filename, rows, err
}
