package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openflights/insight/internal/charts"
	"openflights/insight/internal/common"
	reqctx "openflights/insight/internal/context"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/db"
	"openflights/insight/internal/metrics"
	"openflights/insight/internal/models/dtos"
	"openflights/insight/internal/models/entities"
	"openflights/insight/internal/predict"
	"openflights/insight/internal/services"
)

// Mock RouteLoader
type mockRouteLoader struct {
	loadAllFunc func(ctx context.Context) (dataset.Dataset, error)
}

func (m *mockRouteLoader) LoadAll(ctx context.Context) (dataset.Dataset, error) {
	return m.loadAllFunc(ctx)
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

type envelope struct {
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	ResponseTime string          `json:"response_time"`
	Data         json.RawMessage `json:"data"`
}

const testSession = "6f1c1d1e-8d3f-4a57-9a53-111111111111"

func seededRoutes() dataset.Dataset {
	return dataset.FromRoutes([]dataset.Route{
		{RouteID: dataset.IntPtr(1), Airline: "BA", DistanceKM: dataset.IntPtr(500), EcoScore: dataset.IntPtr(0), Stops: dataset.IntPtr(0)},
		{RouteID: dataset.IntPtr(2), Airline: "LH", DistanceKM: dataset.IntPtr(1000), EcoScore: dataset.IntPtr(0), Stops: dataset.IntPtr(0)},
		{RouteID: dataset.IntPtr(3), Airline: "QF", DistanceKM: dataset.IntPtr(2000), EcoScore: dataset.IntPtr(0), Stops: dataset.IntPtr(1)},
	})
}

func newTestHandlers(t *testing.T, load func(ctx context.Context) (dataset.Dataset, error)) *Handlers {
	t.Helper()
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	store := common.NewUploadStore(common.NewCacheService(time.Hour, time.Minute), time.Hour)
	svc := services.NewDashboardService(&mockRouteLoader{loadAllFunc: load}, store, m)
	return NewHandlers(InitDependencies(svc, fakePinger{}, m, 1<<20))
}

func seeded(ctx context.Context) (dataset.Dataset, error) {
	return seededRoutes(), nil
}

func do(h http.HandlerFunc, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req = req.WithContext(reqctx.SetSessionID(req.Context(), testSession))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{db.Wrap("ping", errors.New("refused")), http.StatusServiceUnavailable},
		{&dataset.ParseError{File: "x.csv", Err: errors.New("bad")}, http.StatusBadRequest},
		{predict.ErrInsufficientData, http.StatusUnprocessableEntity},
		{charts.ErrNoData, http.StatusNoContent},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got, msg := StatusFor(tc.err)
		assert.Equal(t, tc.want, got, tc.err.Error())
		assert.NotEmpty(t, msg)
	}
}

func TestSummaryHandler(t *testing.T) {
	h := newTestHandlers(t, seeded)

	rec := do(h.SummaryHandler(), http.MethodGet, "/api/v1/summary?category=Medium", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.SummaryResponse
	env := decode(t, rec, &resp)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, "Medium", resp.Category)
	assert.Equal(t, 2, resp.Summary.Count)
	assert.Equal(t, "1500", resp.MeanDistanceLabel)
}

func TestCategoriesAndRoutesHandlers(t *testing.T) {
	h := newTestHandlers(t, seeded)

	var cats dtos.CategoriesResponse
	decode(t, do(h.CategoriesHandler(), http.MethodGet, "/api/v1/categories?category=Short", nil, ""), &cats)
	assert.Equal(t, []string{"All", "Medium", "Short"}, cats.Options)

	var routes dtos.RoutesResponse
	decode(t, do(h.RoutesHandler(), http.MethodGet, "/api/v1/routes?category=Short", nil, ""), &routes)
	assert.Equal(t, 1, routes.Count)
	require.Len(t, routes.Routes, 1)
	assert.Equal(t, "BA", routes.Routes[0].Airline)
	assert.Equal(t, dataset.CategoryShort, routes.Routes[0].DistanceCategory)
}

func TestInsightsHandler(t *testing.T) {
	h := newTestHandlers(t, seeded)

	var resp dtos.InsightsResponse
	decode(t, do(h.InsightsHandler(), http.MethodGet, "/api/v1/insights?n=2", nil, ""), &resp)
	require.Len(t, resp.Longest, 2)
	assert.Equal(t, 2000, *resp.Longest[0].DistanceKM)
	assert.Equal(t, 500, *resp.Shortest[0].DistanceKM)

	rec := do(h.InsightsHandler(), http.MethodGet, "/api/v1/insights?n=zero", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartViewHandlers(t *testing.T) {
	h := newTestHandlers(t, seeded)

	var shares []charts.CategoryShare
	decode(t, do(h.ShareViewHandler(), http.MethodGet, "/api/v1/charts/share", nil, ""), &shares)
	require.Len(t, shares, 2)
	assert.Equal(t, 2, shares[0].Count)

	var means []charts.CategoryMean
	decode(t, do(h.MeanDistanceViewHandler(), http.MethodGet, "/api/v1/charts/mean-distance", nil, ""), &means)
	require.Len(t, means, 2)
	assert.InDelta(t, 1500, means[0].MeanDistanceKM, 1e-9)
}

func TestStorageUnavailable(t *testing.T) {
	h := newTestHandlers(t, func(ctx context.Context) (dataset.Dataset, error) {
		return dataset.Dataset{}, db.Wrap("acquire connection", errors.New("connection refused"))
	})

	rec := do(h.SummaryHandler(), http.MethodGet, "/api/v1/summary", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "error", env.Status)
}

func TestPredictHandler(t *testing.T) {
	h := newTestHandlers(t, seeded)

	rec := do(h.PredictHandler(), http.MethodPost, "/api/v1/predict", strings.NewReader(`{"distance_km":1500}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dtos.EstimateResponse
	decode(t, rec, &resp)
	assert.Equal(t, predict.StrategyLinear, resp.Strategy)
	assert.InDelta(t, 112.5, resp.Minutes, 0.5)
	assert.Equal(t, 3, resp.Samples)

	rec = do(h.PredictHandler(), http.MethodPost, "/api/v1/predict", strings.NewReader(`{"distance_km":1550}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "not a multiple of 100")

	rec = do(h.PredictHandler(), http.MethodPost, "/api/v1/predict", strings.NewReader(`{"distance_km":1500,"category":"Long"}`), "application/json")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(h.PredictHandler(), http.MethodPost, "/api/v1/predict", strings.NewReader(`not json`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateHandler(t *testing.T) {
	h := newTestHandlers(t, func(ctx context.Context) (dataset.Dataset, error) {
		return dataset.Dataset{}, errors.New("estimate never loads routes")
	})

	rec := do(h.EstimateHandler(), http.MethodPost, "/api/v1/estimate", strings.NewReader(`{"distance_km":1500}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dtos.EstimateResponse
	decode(t, rec, &resp)
	assert.Equal(t, predict.StrategyRuleBased, resp.Strategy)
	assert.InDelta(t, 112.5, resp.Minutes, 1e-9)

	for _, body := range []string{`{"distance_km":50}`, `{"distance_km":10100}`, `{}`} {
		rec = do(h.EstimateHandler(), http.MethodPost, "/api/v1/estimate", strings.NewReader(body), "application/json")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestUploadHandler(t *testing.T) {
	h := newTestHandlers(t, seeded)

	body, ct := multipartBody(t, "extra.csv", "Airline,distance_km\nAF,6000\nKL,900\n")
	rec := do(h.UploadHandler(), http.MethodPost, "/api/v1/upload", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dtos.UploadResponse
	decode(t, rec, &resp)
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, "extra.csv", resp.Filename)

	var summary dtos.SummaryResponse
	decode(t, do(h.SummaryHandler(), http.MethodGet, "/api/v1/summary", nil, ""), &summary)
	assert.Equal(t, 5, summary.Summary.Count)
}

func TestUploadHandler_Rejections(t *testing.T) {
	h := newTestHandlers(t, seeded)

	body, ct := multipartBody(t, "bad.csv", "Airline,distance_km\nAF,1,2\n")
	rec := do(h.UploadHandler(), http.MethodPost, "/api/v1/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h.UploadHandler(), http.MethodPost, "/api/v1/upload", strings.NewReader("{}"), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h.deps.UploadMaxBytes = 512
	body, ct = multipartBody(t, "big.csv", "Airline,distance_km\n"+strings.Repeat("AF,6000\n", 100))
	rec = do(h.UploadHandler(), http.MethodPost, "/api/v1/upload", body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadHandler_StreamedBodyOverLimit(t *testing.T) {
	h := newTestHandlers(t, seeded)
	h.deps.UploadMaxBytes = 512

	body, ct := multipartBody(t, "big.csv", "Airline,distance_km\n"+strings.Repeat("AF,6000\n", 100))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", ct)
	req.ContentLength = -1
	req = req.WithContext(reqctx.SetSessionID(req.Context(), testSession))

	rec := httptest.NewRecorder()
	h.UploadHandler()(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var summary dtos.SummaryResponse
	decode(t, do(h.SummaryHandler(), http.MethodGet, "/api/v1/summary", nil, ""), &summary)
	assert.Equal(t, 3, summary.Summary.Count, "rejected upload is not merged")
}

func TestExportHandler(t *testing.T) {
	h := newTestHandlers(t, seeded)

	rec := do(h.ExportHandler(), http.MethodGet, "/api/v1/export.csv?category=Short", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestPNGHandlers(t *testing.T) {
	h := newTestHandlers(t, seeded)

	for _, handler := range []http.HandlerFunc{h.SharePNGHandler(), h.MeanDistancePNGHandler(), h.DurationFitPNGHandler()} {
		rec := do(handler, http.MethodGet, "/charts/x.png", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	}

	empty := newTestHandlers(t, func(ctx context.Context) (dataset.Dataset, error) { return dataset.Empty(), nil })
	rec := do(empty.SharePNGHandler(), http.MethodGet, "/charts/share.png", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestHealthCheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheckHandler(fakePinger{}, "sqlite", time.Now().Add(-time.Minute))(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var report entities.HealthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Healthy())
	assert.Equal(t, "sqlite", report.Storage.Driver)
	assert.Equal(t, "ok", report.Storage.Status)
	assert.Equal(t, "1m0s", report.Uptime)
	assert.NotContains(t, rec.Body.String(), `"error"`)

	rec = httptest.NewRecorder()
	HealthCheckHandler(fakePinger{err: errors.New("connection refused")}, "postgres", time.Now())(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	report = entities.HealthReport{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.False(t, report.Healthy())
	assert.Equal(t, "down", report.Storage.Status)
	assert.Equal(t, "connection refused", report.Storage.Error)
}
