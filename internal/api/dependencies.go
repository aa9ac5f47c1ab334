package api

import (
	"context"

	"openflights/insight/internal/metrics"
	"openflights/insight/internal/services"
)

// Pinger is the storage handle checked by the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Services struct {
	Dashboard *services.DashboardService
}

type Dependencies struct {
	Services       *Services
	Storage        Pinger
	Metrics        *metrics.MetricsRegistry
	UploadMaxBytes int64
}

func InitDependencies(dashboard *services.DashboardService, storage Pinger, metricsReg *metrics.MetricsRegistry, uploadMaxBytes int64) *Dependencies {
	return &Dependencies{
		Services:       &Services{Dashboard: dashboard},
		Storage:        storage,
		Metrics:        metricsReg,
		UploadMaxBytes: uploadMaxBytes,
	}
}

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}
