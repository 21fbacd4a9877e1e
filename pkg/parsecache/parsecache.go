// Package parsecache is a time-bounded memoization layer for parse results.
// Entries carry their own TTL; expiry happens both on read and through a
// periodic sweep, since the sweep interval is coarser than individual TTLs.
package parsecache

import (
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultSize          = 1024
	DefaultTTL           = time.Hour
	DefaultSweepInterval = 5 * time.Minute
)

var ErrInvalidSize = errors.New("cache size must be positive")

// Config configures a Cache. Zero fields fall back to the package defaults.
// Now is injectable so tests can simulate elapsed time without sleeping.
type Config struct {
	Size          int
	DefaultTTL    time.Duration
	SweepInterval time.Duration
	Now           func() time.Time
}

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

// Cache is a process-wide, size-bounded TTL cache. The underlying LRU is
// safe for concurrent use; a write for an existing key always replaces the
// entry, never mutates it.
type Cache[V any] struct {
	store      *lru.Cache[string, entry[V]]
	defaultTTL time.Duration
	now        func() time.Time
	stop       chan struct{}
}

// New creates a Cache and starts its background sweeper.
func New[V any](cfg Config) (*Cache[V], error) {
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Size < 0 {
		return nil, ErrInvalidSize
	}
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	store, err := lru.New[string, entry[V]](cfg.Size)
	if err != nil {
		return nil, err
	}

	c := &Cache[V]{
		store:      store,
		defaultTTL: cfg.DefaultTTL,
		now:        cfg.Now,
		stop:       make(chan struct{}),
	}
	go c.sweepLoop(cfg.SweepInterval)
	return c, nil
}

// Get returns the cached value for key. An entry whose age exceeds its TTL
// is deleted on read and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) > e.ttl {
		c.store.Remove(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.store.Add(key, entry[V]{value: value, storedAt: c.now(), ttl: ttl})
}

// Delete removes key from the cache.
func (c *Cache[V]) Delete(key string) {
	c.store.Remove(key)
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache[V]) Len() int {
	return c.store.Len()
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *Cache[V]) Sweep() int {
	now := c.now()
	removed := 0
	for _, key := range c.store.Keys() {
		if e, ok := c.store.Peek(key); ok && now.Sub(e.storedAt) > e.ttl {
			c.store.Remove(key)
			removed++
		}
	}
	return removed
}

// Close stops the background sweeper.
func (c *Cache[V]) Close() {
	close(c.stop)
}

func (c *Cache[V]) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.Sweep()
		case <-c.stop:
			return
		}
	}
}
