/*
Package dither implements Floyd-Steinberg error diffusion onto the fixed VGA
palette.

The pass is strictly sequential: each pixel is mapped after the error from
every earlier pixel in scan order has been added to it. Accumulated values
are never clamped, so a channel can drift outside 0-255 and is matched
against the palette as is.
*/
package dither

import (
	"github.com/bodgit/imgbin/palette"
	"github.com/bodgit/imgbin/raster"
)

// Threshold is the number of distinct colors a raster may have before it
// gets dithered.
const Threshold = 16

type weight struct {
	dx, dy int
	n      float64
}

// Error diffusion matrix, in sixteenths:
//
//	[      *   7 ]
//	[  3   5   1 ]
var floydSteinberg = []weight{
	{1, 0, 7},
	{-1, 1, 3},
	{0, 1, 5},
	{1, 1, 1},
}

// Needed reports whether r has more than Threshold distinct colors.
func Needed(r *raster.Raster) bool {
	return r.Distinct(Threshold) > Threshold
}

// Apply dithers r in place if Needed says so and reports whether it did.
func Apply(r *raster.Raster) bool {
	if !Needed(r) {
		return false
	}
	FloydSteinberg(r)
	return true
}

// FloydSteinberg rewrites every pixel of r with the palette color chosen by
// error diffusion. Afterwards r only contains exact palette colors.
func FloydSteinberg(r *raster.Raster) {
	r.Check()

	w, h := r.Width, r.Height

	buf := make([][3]float64, len(r.Pix))
	for i, c := range r.Pix {
		buf[i] = [3]float64{float64(c[0]), float64(c[1]), float64(c[2])}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := buf[y*w+x]

			c := palette.RGBOf(int(palette.NearestFloat(old[0], old[1], old[2])))
			r.Pix[y*w+x] = c

			var e [3]float64
			for j := range e {
				e[j] = old[j] - float64(c[j])
			}

			for _, k := range floydSteinberg {
				nx, ny := x+k.dx, y+k.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				p := &buf[ny*w+nx]
				for j := range p {
					p[j] += e[j] * k.n / 16
				}
			}
		}
	}
}
