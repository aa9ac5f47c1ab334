package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService is the in-memory cache backend
type CacheService struct {
	cache *cache.Cache
}

// Ensure CacheService implements CacheInterface
var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// ItemCount returns the number of entries, expired ones included until cleanup.
func (cs *CacheService) ItemCount() int {
	return cs.cache.ItemCount()
}

// Close closes the cache (no-op for in-memory cache)
func (cs *CacheService) Close() error {
	return nil
}
