package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"openflights/insight/internal/config"
	"openflights/insight/internal/logging"
)

// NewRedisClient connects to the configured Redis and pings it once.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()
	logging.Info("Initializing Redis client", "addr", addr)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
