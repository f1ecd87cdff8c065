// Package cache provides the read-through memoization layer in front of the
// remote catalog client. Entries are bounded by an LRU with a TTL so a
// request burst is served from memory without the table growing forever.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

type Cache struct {
	lru    *expirable.LRU[string, interface{}]
	logger *logrus.Logger
}

// New creates a cache holding at most size entries, each expiring after ttl.
// A ttl of zero disables expiry.
func New(size int, ttl time.Duration, logger *logrus.Logger) *Cache {
	return &Cache{
		lru:    expirable.NewLRU[string, interface{}](size, nil, ttl),
		logger: logger,
	}
}

// GetOrCompute returns the cached value for (name, key) if present,
// otherwise invokes compute, stores its result, and returns it. Compute
// errors are returned as-is and never cached.
//
// Two goroutines racing on the same cold key may both invoke compute; the
// last write wins. That is acceptable for idempotent remote reads.
func (c *Cache) GetOrCompute(name, key string, compute func() (interface{}, error)) (interface{}, error) {
	cacheKey := name + ":" + key

	if value, ok := c.lru.Get(cacheKey); ok {
		if c.logger != nil {
			c.logger.WithField("key", cacheKey).Debug("Cache hit")
		}
		return value, nil
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	c.lru.Add(cacheKey, value)
	if c.logger != nil {
		c.logger.WithField("key", cacheKey).Debug("Cache miss, stored computed value")
	}
	return value, nil
}

// Invalidate drops the entry for (name, key) if present.
func (c *Cache) Invalidate(name, key string) {
	c.lru.Remove(name + ":" + key)
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
