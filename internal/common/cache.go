package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache is an in-process TTL store. It holds request plumbing state such as
// per-client rate limiters, never entity rows.
type Cache struct {
	store *cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{store: cache.New(expirationTime, cleanupTime)}
}

// GetOrAdd returns the value stored under key, storing the result of create first if the key is missing.
// When two callers race, both receive the value that won.
func (c *Cache) GetOrAdd(key string, create func() interface{}) interface{} {
	if v, ok := c.store.Get(key); ok {
		return v
	}

	v := create()
	if err := c.store.Add(key, v, cache.DefaultExpiration); err != nil {
		if existing, ok := c.store.Get(key); ok {
			return existing
		}
	}

	return v
}

// Touch extends the expiry of key by re-storing its current value.
func (c *Cache) Touch(key string) {
	if v, ok := c.store.Get(key); ok {
		c.store.Set(key, v, cache.DefaultExpiration)
	}
}

func CacheKeyClientLimiter(ip string) string {
	return "limiter:" + ip
}
