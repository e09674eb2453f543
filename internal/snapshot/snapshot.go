// Package snapshot keeps the latest order and user lists fetched from the store API.
package snapshot

import (
	"sync"
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// Cache holds a single value fetched at a known time and expires it after ttl.
// A zero or negative ttl keeps the value until it is invalidated.
//
// Every Invalidate starts a new generation. Fetches that began in an older
// generation must not be stored, see SetIfCurrent.
type Cache[T any] struct {
	mu         sync.RWMutex
	ttl        time.Duration
	now        func() time.Time
	value      T
	fetchedAt  time.Time
	ok         bool
	generation uint64
}

// Orders is the snapshot of every order known to the dashboard.
type Orders = Cache[[]model.Order]

// Users is the snapshot of registered store customers.
type Users = Cache[[]model.User]

// New creates an empty cache.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value and the time it was stored.
func (c *Cache[T]) Get() (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if !c.ok {
		return zero, time.Time{}, false
	}
	if c.ttl > 0 && c.now().Sub(c.fetchedAt) > c.ttl {
		return zero, time.Time{}, false
	}
	return c.value, c.fetchedAt, true
}

// Set replaces the cached value and returns the time it was stored.
func (c *Cache[T]) Set(value T) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.fetchedAt = c.now()
	c.ok = true
	return c.fetchedAt
}

// Generation returns the current generation, to be passed to SetIfCurrent
// once a fetch completes.
func (c *Cache[T]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// SetIfCurrent stores value only if no Invalidate happened since gen was
// read. It returns the fetch time and whether the value was stored.
func (c *Cache[T]) SetIfCurrent(value T, gen uint64) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	at := c.now()
	if gen != c.generation {
		return at, false
	}
	c.value = value
	c.fetchedAt = at
	c.ok = true
	return at, true
}

// Invalidate drops the cached value so the next read refetches.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.fetchedAt = time.Time{}
	c.ok = false
	c.generation++
}
