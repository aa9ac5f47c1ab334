package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openflights/insight/internal/models/dtos"
)

func TestRespondSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondSuccess(rec, time.Now(), "Summary", map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body dtos.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "Summary", body.Message)
	assert.Regexp(t, `^\d+ms$`, body.ResponseTime)
	assert.Equal(t, map[string]any{"count": float64(3)}, body.Data)
}

func TestRespondError_OmitsData(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, time.Now(), "distance_km must be a positive number", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"data"`)

	var body dtos.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "distance_km must be a positive number", body.Message)
}

func TestRespondError_DefaultsTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, time.Now(), "Internal server error")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRespondFile(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFile(rec, "text/csv", "routes.csv", []byte("airline\nBA\n"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="routes.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "airline\nBA\n", rec.Body.String())

	rec = httptest.NewRecorder()
	RespondFile(rec, "image/png", "", []byte{0x89, 'P', 'N', 'G'})
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
