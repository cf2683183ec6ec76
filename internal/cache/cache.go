package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// item wraps cached data with its expiry deadline.
type item struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is an in-process TTL cache on top of an LRU. Staleness is bounded by
// the per-entry TTL; Clear wipes everything, which is how write paths
// invalidate the rendered feed. Correctness of the underlying data never
// depends on cache state.
type Cache struct {
	lru *lru.Cache[string, item]
	now func() time.Time
}

// New creates a cache holding at most capacity entries.
func New(capacity int) (*Cache, error) {
	return NewWithClock(capacity, time.Now)
}

// NewWithClock is New with an injectable clock, for deterministic expiry in
// tests.
func NewWithClock(capacity int, now func() time.Time) (*Cache, error) {
	l, err := lru.New[string, item](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l, now: now}, nil
}

// Set stores data under key for the given TTL.
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lru.Add(key, item{
		data:      data,
		expiresAt: c.now().Add(ttl),
	})
}

// Get returns the cached data, or nil if absent or expired.
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lru.Get(key)
	if !ok {
		return nil
	}
	if c.now().After(val.expiresAt) {
		c.lru.Remove(key)
		return nil
	}
	return val.data
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.lru.Purge()
}
