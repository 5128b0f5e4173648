package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Loader fetches a fresh value on cache miss.
type Loader[V any] func() (V, error)

// TTL is a read-through cache with per-key single-flight refresh: when
// many requests miss the same cold key at once, exactly one loader runs
// and the rest wait for its result. Load errors are never cached, so a
// failed refresh does not poison later reads.
type TTL[V any] struct {
	lru   *expirable.LRU[string, V]
	group singleflight.Group
}

// NewTTL builds a cache holding up to size entries for ttl each.
func NewTTL[V any](size int, ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// Get returns the cached value for key, or runs load (once across
// concurrent callers) to fill it.
func (c *TTL[V]) Get(key string, load Loader[V]) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have filled the key while we waited.
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		fresh, err := load()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, fresh)
		return fresh, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Invalidate drops a key so the next Get reloads it.
func (c *TTL[V]) Invalidate(key string) {
	c.lru.Remove(key)
}
