// Package cache provides a small generic LRU cache used to memoize
// derived rendering artifacts such as blur kernels.
package cache

import "sync"

// Cache is a generic thread-safe LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used entries
// are evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

// entry holds a cached value with its access time.
type entry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Set stores a value in the cache.
// If the cache exceeds softLimit after insertion, the oldest entry
// is evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	c.evictIfNeeded()
}

// GetOrCreate returns the cached value or creates it.
// Thread-safe: create is called under the lock to prevent duplicate
// creation, so it must not call back into the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		return e.value
	}

	value := create()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	c.evictIfNeeded()

	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictIfNeeded removes least recently used entries while the cache
// exceeds its soft limit. Caller must hold the lock.
func (c *Cache[K, V]) evictIfNeeded() {
	if c.softLimit <= 0 {
		return
	}
	for len(c.entries) > c.softLimit {
		var oldestKey K
		var oldestTime int64 = -1
		for k, e := range c.entries {
			if oldestTime < 0 || e.atime < oldestTime {
				oldestKey = k
				oldestTime = e.atime
			}
		}
		delete(c.entries, oldestKey)
	}
}
