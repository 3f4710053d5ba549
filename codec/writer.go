package codec

import (
	"image"
	"io"

	"github.com/bodgit/imgbin/dither"
	"github.com/bodgit/imgbin/quantize"
	"github.com/bodgit/imgbin/raster"
)

// Codec converts rasters to the packed format.
type Codec struct {
	q *quantize.Quantizer
}

// New returns a Codec that memoizes color lookups in c. Pass the same Cache
// to every Codec in a process.
func New(c *quantize.Cache) *Codec {
	return &Codec{
		q: quantize.New(c),
	}
}

// Convert returns r in packed form. When r has more than 16 distinct colors
// it is dithered in place first, so the caller must not rely on its contents
// afterwards.
func (c *Codec) Convert(r *raster.Raster) []byte {
	r.Check()
	dither.Apply(r)
	return Pack(c.q.Quantize(r))
}

// Encode writes the Image m to w in packed form.
func (c *Codec) Encode(w io.Writer, m image.Image) error {
	_, err := w.Write(c.Convert(raster.FromImage(m)))
	return err
}
