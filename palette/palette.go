/*
Package palette implements the fixed 16 color VGA palette used by the packed
4bpp format.

The order of the table is significant. The position of each entry is its
4-bit index and when two entries are equally close to a color the earlier one
wins.
*/
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries in the palette.
const Size = 16

// RGB is a 24-bit color.
type RGB [3]uint8

// Entry is a single palette color. The high nibble of Attribute is the index
// of the entry, the low nibble mirrors it.
type Entry struct {
	Name      string
	Attribute uint8
	RGB       RGB
}

// Index returns the 4-bit palette index of the entry.
func (e Entry) Index() uint8 {
	return e.Attribute >> 4
}

var table = [Size]Entry{
	{"black", 0x00, RGB{0x00, 0x00, 0x00}},
	{"blue", 0x11, RGB{0x00, 0x00, 0xaa}},
	{"green", 0x22, RGB{0x00, 0xaa, 0x00}},
	{"cyan", 0x33, RGB{0x00, 0xaa, 0xaa}},
	{"red", 0x44, RGB{0xaa, 0x00, 0x00}},
	{"magenta", 0x55, RGB{0xaa, 0x00, 0xaa}},
	{"brown", 0x66, RGB{0xaa, 0x55, 0x00}},
	{"ltgray", 0x77, RGB{0xaa, 0xaa, 0xaa}},
	{"dkgray", 0x88, RGB{0x55, 0x55, 0x55}},
	{"ltblue", 0x99, RGB{0x55, 0x55, 0xff}},
	{"ltgreen", 0xaa, RGB{0x55, 0xff, 0x55}},
	{"ltcyan", 0xbb, RGB{0x55, 0xff, 0xff}},
	{"ltred", 0xcc, RGB{0xff, 0x55, 0x55}},
	{"ltmagenta", 0xdd, RGB{0xff, 0x55, 0xff}},
	{"yellow", 0xee, RGB{0xff, 0xff, 0x55}},
	{"white", 0xff, RGB{0xff, 0xff, 0xff}},
}

// Colors is the palette as a color.Palette, suitable for image.Paletted.
var Colors = func() color.Palette {
	p := make(color.Palette, Size)
	for i, e := range table {
		p[i] = color.RGBA{e.RGB[0], e.RGB[1], e.RGB[2], 0xff}
	}
	return p
}()

func mustIndex(i int) {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("palette: index %d out of range", i))
	}
}

// Len returns the number of palette entries, always 16.
func Len() int {
	return Size
}

// At returns the palette entry at index i.
func At(i int) Entry {
	mustIndex(i)
	return table[i]
}

// Entries returns a copy of the table in index order.
func Entries() []Entry {
	e := make([]Entry, Size)
	copy(e, table[:])
	return e
}

// RGBOf returns the color of the entry at index i.
func RGBOf(i int) RGB {
	mustIndex(i)
	return table[i].RGB
}

// Hex returns the entry at index i as a "#rrggbb" string.
func Hex(i int) string {
	c := RGBOf(i)
	return colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}.Hex()
}

// Distance returns the squared euclidean distance between c and the entry at
// index i.
func Distance(c RGB, i int) int {
	p := RGBOf(i)
	var sum int
	for j := range c {
		d := int(c[j]) - int(p[j])
		sum += d * d
	}
	return sum
}

// Nearest returns the index of the entry closest to c. Only a strictly
// smaller distance replaces the current best so ties go to the lowest index.
func Nearest(c RGB) uint8 {
	best, bestDist := 0, -1
	for i := range table {
		if d := Distance(c, i); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return table[best].Index()
}

// NearestFloat is Nearest for unclamped channel values such as those found
// in an error diffusion buffer. The tie-break is the same as Nearest.
func NearestFloat(r, g, b float64) uint8 {
	best, bestDist := 0, 0.0
	for i, e := range table {
		dr := r - float64(e.RGB[0])
		dg := g - float64(e.RGB[1])
		db := b - float64(e.RGB[2])
		if d := dr*dr + dg*dg + db*db; i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return table[best].Index()
}
