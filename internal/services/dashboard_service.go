package services

import (
	"context"
	"fmt"
	"io"

	"openflights/insight/internal/common"
	"openflights/insight/internal/dataset"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/metrics"
	"openflights/insight/internal/predict"
)

// RouteLoader fetches the persisted routes.
type RouteLoader interface {
	LoadAll(ctx context.Context) (dataset.Dataset, error)
}

// View is everything the dashboard shows for one category.
type View struct {
	Category     string
	Options      []string
	Routes       dataset.Dataset
	Summary      dataset.Summary
	Longest      dataset.Dataset
	Shortest     dataset.Dataset
	Model        *predict.LinearModel
	ModelErr     error
	UploadedRows int
}

// ModelReady reports whether predictions are available for this view.
func (v *View) ModelReady() bool {
	return v.ModelErr == nil && v.Model.Trained()
}

// DashboardService runs the load, derive, merge, filter pipeline for each
// interaction. It holds no dataset between calls.
type DashboardService struct {
	loader  RouteLoader
	uploads *common.UploadStore
	metrics *metrics.MetricsRegistry
	rule    predict.RuleBased
}

func NewDashboardService(loader RouteLoader, uploads *common.UploadStore, metricsReg *metrics.MetricsRegistry) *DashboardService {
	return &DashboardService{
		loader:  loader,
		uploads: uploads,
		metrics: metricsReg,
		rule:    predict.NewRuleBased(),
	}
}

// current returns the stored routes merged with the session upload, with
// derived fields recomputed, and the number of uploaded rows.
func (s *DashboardService) current(ctx context.Context, sessionID string) (dataset.Dataset, int, error) {
	base, err := s.loader.LoadAll(ctx)
	if err != nil {
		return dataset.Dataset{}, 0, err
	}
	ds := dataset.Recompute(base)

	extra, found, err := s.uploads.Load(sessionID)
	if err != nil {
		// A corrupt session entry is dropped rather than failing the page.
		logging.ForSession(sessionID).Warnw("Discarding unreadable session upload", "error", err)
		s.uploads.Delete(sessionID)
		return ds, 0, nil
	}
	if !found {
		return ds, 0, nil
	}
	return dataset.Recompute(dataset.Merge(ds, extra)), extra.Len(), nil
}

// Build assembles the view for category.
func (s *DashboardService) Build(ctx context.Context, sessionID, category string) (*View, error) {
	all, uploaded, err := s.current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = dataset.CategoryAll
	}

	filtered := dataset.ApplyFilter(all, category)
	model := predict.NewLinearModel()

	view := &View{
		Category:     category,
		Options:      dataset.FilterOptions(all),
		Routes:       filtered,
		Summary:      dataset.Summarize(filtered),
		Longest:      dataset.Longest(filtered, dataset.DefaultInsightRows),
		Shortest:     dataset.Shortest(filtered, dataset.DefaultInsightRows),
		Model:        model,
		ModelErr:     model.Fit(filtered),
		UploadedRows: uploaded,
	}
	return view, nil
}

// Upload parses a file and makes it the session's upload. A parse failure
// leaves the previous upload in place.
func (s *DashboardService) Upload(ctx context.Context, sessionID, filename string, r io.Reader) (int, error) {
	up, err := dataset.ParseUpload(filename, r)
	if err != nil {
		s.metrics.ObserveUpload(0, err)
		return 0, err
	}

	rows := dataset.ScoreUpload(up)
	if err := s.uploads.Save(sessionID, rows); err != nil {
		s.metrics.ObserveUpload(0, err)
		return 0, fmt.Errorf("store upload: %w", err)
	}

	s.metrics.ObserveUpload(rows.Len(), nil)
	logging.ForSession(sessionID).Infow("Session upload stored", "filename", filename, "rows", rows.Len())
	return rows.Len(), nil
}

// ClearUpload drops the session's uploaded rows.
func (s *DashboardService) ClearUpload(sessionID string) {
	s.uploads.Delete(sessionID)
}

// Predict fits the linear model on the category's rows and evaluates it.
func (s *DashboardService) Predict(ctx context.Context, sessionID, category string, distanceKM float64) (float64, *predict.LinearModel, error) {
	view, err := s.Build(ctx, sessionID, category)
	if err != nil {
		return 0, nil, err
	}
	if view.ModelErr != nil {
		return 0, view.Model, view.ModelErr
	}

	minutes, err := view.Model.Predict(distanceKM)
	if err != nil {
		return 0, view.Model, err
	}
	s.metrics.ObservePrediction(view.Model.Name())
	return minutes, view.Model, nil
}

// Estimate is the rule-based duration; it never touches storage.
func (s *DashboardService) Estimate(distanceKM float64) float64 {
	s.metrics.ObservePrediction(s.rule.Name())
	return s.rule.Minutes(distanceKM)
}

// Export writes the category's rows as CSV.
func (s *DashboardService) Export(ctx context.Context, sessionID, category string, w io.Writer) error {
	all, _, err := s.current(ctx, sessionID)
	if err != nil {
		return err
	}
	return dataset.ApplyFilter(all, category).WriteCSV(w)
}
