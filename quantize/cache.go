package quantize

import (
	"sync"

	"github.com/bodgit/imgbin/palette"
)

// Cache remembers the palette index of every exact color seen so far. Entries
// depend only on the color so one Cache is meant to live for the whole
// process and be shared by every conversion, concurrent ones included. It is
// never evicted.
type Cache struct {
	mu      sync.RWMutex
	indices map[palette.RGB]uint8
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		indices: make(map[palette.RGB]uint8),
	}
}

// Get returns the cached index for rgb, if any.
func (c *Cache) Get(rgb palette.RGB) (uint8, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.indices[rgb]
	return i, ok
}

// Set stores the index for rgb.
func (c *Cache) Set(rgb palette.RGB, i uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indices[rgb] = i
}

// Len returns the number of cached colors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.indices)
}
