/*
Package codec implements the packed 4bpp VGA image format.

The format is a raw stream of 4-bit palette indices, two pixels per byte, in
row-major order starting at the top-left pixel. The first pixel of each pair
is stored in the upper nibble. If the image has an odd number of pixels the
lower nibble of the last byte is zero. There is no header so the width and
height have to be known to read an image back.

Images with more than 16 distinct colors are Floyd-Steinberg dithered onto
the palette before being mapped.
*/
package codec

// PackedLen returns the number of bytes needed to hold n pixels.
func PackedLen(n int) int {
	return (n + 1) >> 1
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}
