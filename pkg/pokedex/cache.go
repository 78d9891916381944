package pokedex

import (
	"sync"

	"pokedex/pkg/pokemon"
)

// Cache memoizes successful lookups by query key. It is safe for concurrent
// use; concurrent first lookups of one key may both fetch, and the last Put wins.
// Entries are never evicted.
type Cache struct {
	entries map[string]*pokemon.Pokemon
	mu      sync.RWMutex
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*pokemon.Pokemon)}
}

// Get returns the cached Pokemon for key.
func (c *Cache) Get(key string) (*pokemon.Pokemon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[key]

	return p, ok
}

// Put stores p under key.
func (c *Cache) Put(key string, p *pokemon.Pokemon) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = p
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
