package common

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"openflights/insight/internal/logging"
)

// RedisCacheService implements CacheInterface using Redis
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService wraps an already connected client.
func NewRedisCacheService(client *redis.Client) *RedisCacheService {
	return &RedisCacheService{
		client: client,
		ctx:    context.Background(),
	}
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Error("Redis cache: failed to marshal value", "key", key, "error", err)
		return
	}

	if err := r.client.Set(r.ctx, key, data, duration).Err(); err != nil {
		logging.Error("Redis cache: failed to set key", "key", key, "error", err)
	}
}

// Get retrieves a value from Redis by key
func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Error("Redis cache: failed to get key", "key", key, "error", err)
		return nil, false
	}

	var result interface{}
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		logging.Error("Redis cache: failed to unmarshal value", "key", key, "error", err)
		return nil, false
	}

	return result, true
}

// Delete removes a value from Redis by key
func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Error("Redis cache: failed to delete key", "key", key, "error", err)
	}
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}

// TTL returns the remaining time to live of a key
func (r *RedisCacheService) TTL(key string) (time.Duration, error) {
	return r.client.TTL(r.ctx, key).Result()
}
