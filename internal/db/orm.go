package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"openflights/insight/internal/config"
	"openflights/insight/internal/logging"
)

// OpenORM connects GORM to the configured driver and pings it once.
func OpenORM(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, Wrap("open", err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, Wrap("open", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, Wrap("ping", err)
	}

	logging.Info("Connected to storage via GORM", "driver", cfg.DBDriver)
	return orm, nil
}
