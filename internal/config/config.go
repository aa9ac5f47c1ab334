package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds every runtime setting of the dashboard.
type Config struct {
	AppEnv   string
	HTTPPort string

	DBDriver   string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDB       string
	SQLitePath string

	SessionBackend string
	SessionTTL     time.Duration
	RedisHost      string
	RedisPort      string
	RedisPassword  string

	UploadMaxBytes   int64
	UploadRatePerSec float64
	UploadBurst      int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppEnv:         getenv("APP_ENV", "development"),
		HTTPPort:       getenv("HTTP_PORT", "8080"),
		DBDriver:       getenv("DB_DRIVER", DriverPostgres),
		PGHost:         getenv("PG_HOST", "localhost"),
		PGPort:         getenv("PG_PORT", "5432"),
		PGUser:         os.Getenv("PG_USER"),
		PGPassword:     os.Getenv("PG_PASSWORD"),
		PGDB:           getenv("PG_DB", "openflights"),
		SQLitePath:     getenv("SQLITE_PATH", "routes.db"),
		SessionBackend: getenv("SESSION_BACKEND", SessionBackendMemory),
		RedisHost:      getenv("REDIS_HOST", "localhost"),
		RedisPort:      getenv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(getenv("SESSION_TTL", "2h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.UploadMaxBytes, err = strconv.ParseInt(getenv("UPLOAD_MAX_BYTES", "10485760"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES: %w", err)
	}
	if cfg.UploadRatePerSec, err = strconv.ParseFloat(getenv("UPLOAD_RATE_PER_SEC", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_RATE_PER_SEC: %w", err)
	}
	if cfg.UploadBurst, err = strconv.Atoi(getenv("UPLOAD_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_BURST: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND %q", c.SessionBackend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// PostgresDSN returns the connection string used by both GORM and sqlx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port for the Redis session backend.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
