package quantize

import (
	"sync"
	"testing"

	"github.com/bodgit/imgbin/palette"
	"github.com/bodgit/imgbin/raster"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	r := raster.New(4, 1)
	r.Pix[0] = palette.RGB{0, 0, 0}
	r.Pix[1] = palette.RGB{255, 255, 255}
	r.Pix[2] = palette.RGB{1, 1, 1}
	r.Pix[3] = palette.RGB{200, 100, 0}

	q := New(nil)
	assert.Equal(t, []uint8{0, 15, 0, 6}, q.Quantize(r))
	assert.Equal(t, 4, q.Cache().Len())
}

func TestQuantizeCache(t *testing.T) {
	c := NewCache()

	r := raster.New(3, 1)
	for i := range r.Pix {
		r.Pix[i] = palette.RGB{0, 0, 0}
	}

	q := New(c)
	assert.Equal(t, []uint8{0, 0, 0}, q.Quantize(r))
	assert.Equal(t, 1, c.Len())

	i, ok := c.Get(palette.RGB{0, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, uint8(0), i)

	_, ok = c.Get(palette.RGB{1, 2, 3})
	assert.False(t, ok)

	// A second quantizer sharing the cache sees the same entries
	assert.Equal(t, 1, New(c).Cache().Len())
}

func TestQuantizeColdWarm(t *testing.T) {
	r := raster.New(64, 4)
	for i := range r.Pix {
		r.Pix[i] = palette.RGB{uint8(i), uint8(i * 3), uint8(i * 7)}
	}

	warm := New(nil)
	first := warm.Quantize(r)
	assert.Equal(t, first, warm.Quantize(r))
	assert.Equal(t, first, New(nil).Quantize(r))

	for i, c := range r.Pix {
		assert.Equal(t, palette.Nearest(c), first[i])
	}
}

func TestQuantizeEmpty(t *testing.T) {
	assert.Empty(t, New(nil).Quantize(raster.New(0, 0)))
}

func TestQuantizeMalformed(t *testing.T) {
	r := &raster.Raster{Width: 2, Height: 2, Pix: make([]palette.RGB, 1)}
	assert.Panics(t, func() { New(nil).Quantize(r) })
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := New(c)
			for v := 0; v < 256; v++ {
				q.Index(palette.RGB{uint8(v), 0, 0})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 256, c.Len())
}
