/*
Package raster holds a decoded true color image as a flat, row-major slice of
24-bit pixels with the origin in the top-left corner.
*/
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/imgbin/palette"
)

// Raster is a width by height grid of RGB pixels.
type Raster struct {
	Width  int
	Height int
	Pix    []palette.RGB
}

// New returns a black raster of the given size.
func New(width, height int) *Raster {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid dimensions %dx%d", width, height))
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]palette.RGB, width*height),
	}
}

// FromImage copies m into a new raster. Any alpha is discarded without
// premultiplying so the stored channels are the straight color values.
func FromImage(m image.Image) *Raster {
	b := m.Bounds()
	r := New(b.Dx(), b.Dy())

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			r.Pix[i] = palette.RGB{c.R, c.G, c.B}
			i++
		}
	}

	return r
}

// Check panics if the number of pixels doesn't match the dimensions.
func (r *Raster) Check() {
	if r.Width < 0 || r.Height < 0 || len(r.Pix) != r.Width*r.Height {
		panic(fmt.Sprintf("raster: %d pixels for %dx%d raster", len(r.Pix), r.Width, r.Height))
	}
}

// Len returns the number of pixels.
func (r *Raster) Len() int {
	return len(r.Pix)
}

// At returns the pixel at (x, y).
func (r *Raster) At(x, y int) palette.RGB {
	return r.Pix[y*r.Width+x]
}

// Set sets the pixel at (x, y).
func (r *Raster) Set(x, y int, c palette.RGB) {
	r.Pix[y*r.Width+x] = c
}

// Distinct counts the distinct colors in the raster, stopping once the count
// exceeds limit. A negative limit counts everything.
func (r *Raster) Distinct(limit int) int {
	seen := make(map[palette.RGB]struct{})
	for _, c := range r.Pix {
		seen[c] = struct{}{}
		if limit >= 0 && len(seen) > limit {
			break
		}
	}
	return len(seen)
}

// Image returns the raster as an opaque *image.RGBA.
func (r *Raster) Image() *image.RGBA {
	r.Check()
	m := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i, c := range r.Pix {
		m.Pix[i*4+0] = c[0]
		m.Pix[i*4+1] = c[1]
		m.Pix[i*4+2] = c[2]
		m.Pix[i*4+3] = 0xff
	}
	return m
}
