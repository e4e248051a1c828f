// Package cache wraps go-cache with typed accessors and the deterministic
// key builder used to memoize bounds, prize sets and draw lists. Caches are
// constructed once at wiring time and injected; entries live for a short TTL
// and there is no persistence.
package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a memoized query result stays valid.
const DefaultTTL = 10 * time.Minute

// Cache is a typed TTL cache over a go-cache store. go-cache is safe for
// concurrent use, so a Cache can be shared across request goroutines.
type Cache[T any] struct {
	c *gocache.Cache
}

// New builds a cache with the given TTL (DefaultTTL when zero or negative).
func New[T any](ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{c: gocache.New(ttl, ttl/2)}
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := c.c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Set stores a value under key with the cache's default expiration.
func (c *Cache[T]) Set(key string, v T) {
	c.c.SetDefault(key, v)
}

// Flush drops every entry. Used by tests.
func (c *Cache[T]) Flush() {
	c.c.Flush()
}

// Key builds a deterministic cache key from an operation kind and its
// normalized query parts. Empty parts are kept so the same parameter always
// occupies the same slot.
func Key(op string, parts ...string) string {
	return op + "|" + strings.Join(parts, "|")
}
