package store

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Milestone_Go/internal/logger"
)

// CacheSchemaVersion is bumped when the cached entry layout changes so stale entries are dropped
const CacheSchemaVersion = "1.0"

type cachedEntry struct {
	Version string
	Value   string
	Present bool
}

// Cached is a read-through cache in front of another Store.
// Absent keys are cached too, so first-run reads do not hit the backend repeatedly.
type Cached struct {
	inner Store
	lru   *expirable.LRU[string, *cachedEntry]
	// held across a backend call and the matching cache update,
	// so a slow miss cannot cache a value older than a concurrent Set
	mu sync.Mutex
}

// NewCached wraps inner with an LRU of the given size and TTL
func NewCached(inner Store, size int, ttl time.Duration) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cached{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if entry, found := c.lru.Get(key); found {
		if entry.Version == CacheSchemaVersion {
			return entry.Value, entry.Present, nil
		}
		c.lru.Remove(key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another reader may have filled the entry while we waited
	if entry, found := c.lru.Get(key); found && entry.Version == CacheSchemaVersion {
		return entry.Value, entry.Present, nil
	}

	v, ok, err := c.inner.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Value: v, Present: ok})
	return v, ok, nil
}

// Set writes through to the backend and only caches on success
func (c *Cached) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Value: value, Present: true})
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.inner.Delete(ctx, key)
	c.lru.Remove(key)
	return err
}

func (c *Cached) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
	if err := c.inner.Clear(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCachePurged)
	return nil
}

// Stats reports the number of cached entries
func (c *Cached) Stats() CacheStats {
	return CacheStats{Entries: c.lru.Len()}
}

// CacheStats is a snapshot of cache occupancy
type CacheStats struct {
	Entries int `json:"entries"`
}
