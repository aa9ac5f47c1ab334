package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"openflights/insight/internal/config"
)

// sqlite3 is registered by the GORM sqlite driver imported in orm.go.
const sqliteDriverName = "sqlite3"

// OpenSQLX connects the read-side handle. It keeps no idle connections, so
// every LoadAll works on a connection opened for that call.
func OpenSQLX(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var driver, dsn string
	switch cfg.DBDriver {
	case config.DriverPostgres:
		driver, dsn = "postgres", cfg.PostgresDSN()
	case config.DriverSQLite:
		driver, dsn = sqliteDriverName, cfg.SQLitePath
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, Wrap("connect", err)
	}
	conn.SetMaxIdleConns(0)
	return conn, nil
}
