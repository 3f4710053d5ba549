/*
Package quantize maps the pixels of a raster onto indices of the fixed VGA
palette.
*/
package quantize

import (
	"github.com/bodgit/imgbin/palette"
	"github.com/bodgit/imgbin/raster"
)

// Quantizer maps colors to palette indices, memoizing through a Cache.
type Quantizer struct {
	cache *Cache
}

// New returns a Quantizer backed by c. A nil c gets a private cache.
func New(c *Cache) *Quantizer {
	if c == nil {
		c = NewCache()
	}
	return &Quantizer{
		cache: c,
	}
}

// Cache returns the cache used by q.
func (q *Quantizer) Cache() *Cache {
	return q.cache
}

// Index returns the palette index nearest to c.
func (q *Quantizer) Index(c palette.RGB) uint8 {
	if i, ok := q.cache.Get(c); ok {
		return i
	}
	i := palette.Nearest(c)
	q.cache.Set(c, i)
	return i
}

// Quantize returns one palette index per pixel of r, in raster order.
func (q *Quantizer) Quantize(r *raster.Raster) []uint8 {
	r.Check()

	indices := make([]uint8, len(r.Pix))
	for i, c := range r.Pix {
		indices[i] = q.Index(c)
	}
	return indices
}
