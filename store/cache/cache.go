// Package cache provides a small in-memory TTL cache used by the store
// layer to avoid repeated database reads for hot objects.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Config holds the cache settings.
type Config struct {
	// DefaultTTL is applied to entries set without an explicit TTL.
	DefaultTTL time.Duration
	// CleanupInterval controls how often expired entries are swept.
	// Zero disables the background sweeper; expired entries are then
	// dropped lazily on read.
	CleanupInterval time.Duration
	// MaxItems bounds the cache size; the least recently used entry is
	// evicted when the bound is exceeded. Zero means unbounded.
	MaxItems int
	// OnEviction, if set, is invoked after an entry is evicted or expired.
	OnEviction func(key string, value any)
}

type entry struct {
	key       string
	value     any
	expiresAt time.Time
	elem      *list.Element
}

// Cache is a mutex-guarded LRU cache with per-entry expiry.
type Cache struct {
	mu      sync.Mutex
	config  Config
	items   map[string]*entry
	lru     *list.List // front = most recently used
	closeCh chan struct{}
	closed  bool
}

// New creates a new cache with the given configuration.
func New(config Config) *Cache {
	c := &Cache{
		config:  config,
		items:   make(map[string]*entry),
		lru:     list.New(),
		closeCh: make(chan struct{}),
	}
	if config.CleanupInterval > 0 {
		go c.sweepLoop()
	}
	return c
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.removeLocked(e)
		return nil, false
	}
	c.lru.MoveToFront(e.elem)
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.config.DefaultTTL)
}

// SetWithTTL stores value under key with an explicit TTL. A zero TTL means
// the entry never expires.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.lru.MoveToFront(e.elem)
		return
	}

	e := &entry{key: key, value: value, expiresAt: expiresAt}
	e.elem = c.lru.PushFront(e)
	c.items[key] = e

	if c.config.MaxItems > 0 && len(c.items) > c.config.MaxItems {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeLocked(oldest.Value.(*entry))
		}
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeLocked(e)
	}
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close stops the background sweeper.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.closeCh)
	}
}

func (c *Cache) removeLocked(e *entry) {
	c.lru.Remove(e.elem)
	delete(c.items, e.key)
	if c.config.OnEviction != nil {
		c.config.OnEviction(e.key, e.value)
	}
}

func (c *Cache) sweepLoop() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.closeCh:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.items {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			c.removeLocked(e)
		}
	}
}
