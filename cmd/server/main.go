package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"openflights/insight/internal/api"
	"openflights/insight/internal/common"
	"openflights/insight/internal/config"
	"openflights/insight/internal/db"
	"openflights/insight/internal/db/repositories"
	"openflights/insight/internal/logging"
	"openflights/insight/internal/metrics"
	"openflights/insight/internal/routes"
	"openflights/insight/internal/services"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Route insight dashboard starting up",
		"environment", cfg.AppEnv,
		"storage_driver", cfg.DBDriver,
		"session_backend", cfg.SessionBackend,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Schema and batch writes go through GORM
	orm, err := db.OpenORM(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to connect to storage (GORM)", "error", err.Error())
	}
	if err := db.EnsureSchema(ctx, orm); err != nil {
		logging.Fatal("Failed to ensure routes schema", "error", err.Error())
	}
	logging.Info("Connected to storage (GORM)")

	// Dashboard reads go through sqlx
	reader, err := db.OpenSQLX(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to connect to storage (sqlx)", "error", err.Error())
	}
	defer reader.Close()
	logging.Info("Connected to storage (sqlx)")

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	cache, err := newSessionCache(ctx, cfg)
	if err != nil {
		logging.Fatal("Failed to initialize session cache", "error", err.Error())
	}
	defer cache.Close()

	repo := repositories.NewRouteRepository(reader, orm, metricsReg)
	uploads := common.NewUploadStore(cache, cfg.SessionTTL)
	dashboard := services.NewDashboardService(repo, uploads, metricsReg)

	deps := api.InitDependencies(dashboard, reader, metricsReg, cfg.UploadMaxBytes)
	router := routes.RegisterRoutes(cfg, deps, prometheus.DefaultGatherer, time.Now())

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.HTTPPort, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
}

// newSessionCache picks the upload store backend.
func newSessionCache(ctx context.Context, cfg *config.Config) (common.CacheInterface, error) {
	if cfg.SessionBackend != config.SessionBackendRedis {
		return common.NewCacheService(cfg.SessionTTL, 10*time.Minute), nil
	}

	client, err := common.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logging.Info("Session uploads stored in Redis", "addr", cfg.RedisAddr())
	return common.NewRedisCacheService(client), nil
}
