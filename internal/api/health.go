package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"openflights/insight/internal/logging"
	"openflights/insight/internal/models/entities"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck. Only storage is checked;
// the dashboard cannot render without it.
func HealthCheckHandler(storage Pinger, driver string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		report := entities.HealthReport{
			Status:  "ok",
			Storage: pingStorage(ctx, storage, driver),
			UpSince: upSince,
			Uptime:  time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if report.Storage.Status != "ok" {
			report.Status = "down"
			code = http.StatusServiceUnavailable
			logging.Warn("Storage health check failed", "driver", driver, "error", report.Storage.Error)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(report)
	}
}

func pingStorage(ctx context.Context, storage Pinger, driver string) entities.StorageHealth {
	start := time.Now()
	err := storage.PingContext(ctx)
	h := entities.StorageHealth{
		Status:    "ok",
		Driver:    driver,
		LatencyMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		h.Status = "down"
		h.Error = err.Error()
	}
	return h
}
