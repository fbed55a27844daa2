package cache

import (
	"context"
	"time"
)

// LayeredCache fronts Redis with an in-process layer. Reads try memory
// first and backfill it on a Redis hit; writes go through to both so a
// restarted replica warms from Redis.
type LayeredCache struct {
	mem   *MemoryCache
	redis *RedisCache
}

func NewLayeredCache(redisCache *RedisCache, opts ...LayeredOption) *LayeredCache {
	cfg := &LayeredConfig{MemoryMaxSize: 1000}
	for _, opt := range opts {
		opt(cfg)
	}
	return &LayeredCache{
		mem:   NewMemoryCache(WithMemoryMaxSize(cfg.MemoryMaxSize)),
		redis: redisCache,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := lc.redis.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	_ = lc.mem.Set(ctx, key, value, ttl)
	return nil
}

func (lc *LayeredCache) Get(ctx context.Context, key string) (string, error) {
	if val, err := lc.mem.Get(ctx, key); err == nil {
		return val, nil
	}

	val, err := lc.redis.Get(ctx, key)
	if err != nil {
		return "", err
	}

	// Backfill without a TTL; the memory layer's LRU cap bounds it and
	// Redis remains the authority on expiry.
	_ = lc.mem.Set(ctx, key, val, 0)
	return val, nil
}

var _ Service = (*LayeredCache)(nil)
