package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      string
	expiresAt  time.Time // zero means no expiry
	lastAccess time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is an in-process Service with a hard entry cap. Expired
// entries are dropped lazily on read; when the cap is hit the least
// recently read entry is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	maxSize int
}

func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	cfg := &MemoryConfig{MaxSize: 1000}
	for _, opt := range opts {
		opt(cfg)
	}
	return &MemoryCache{
		entries: make(map[string]*memoryEntry),
		maxSize: cfg.MaxSize,
	}
}

func (mc *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.entries[key]; !exists && len(mc.entries) >= mc.maxSize {
		mc.evictOldest()
	}

	e := &memoryEntry{value: value, lastAccess: now}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	mc.entries[key] = e
	return nil
}

func (mc *MemoryCache) Get(_ context.Context, key string) (string, error) {
	now := time.Now()

	mc.mu.Lock()
	defer mc.mu.Unlock()

	e, ok := mc.entries[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if e.expired(now) {
		delete(mc.entries, key)
		return "", ErrCacheMiss
	}
	e.lastAccess = now
	return e.value, nil
}

// evictOldest removes the entry with the stalest read time. Called with
// the lock held.
func (mc *MemoryCache) evictOldest() {
	var victim string
	var oldest time.Time
	for key, e := range mc.entries {
		if victim == "" || e.lastAccess.Before(oldest) {
			victim = key
			oldest = e.lastAccess
		}
	}
	if victim != "" {
		delete(mc.entries, victim)
	}
}

var _ Service = (*MemoryCache)(nil)
