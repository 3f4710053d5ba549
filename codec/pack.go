package codec

import "fmt"

// Pack packs palette indices two to a byte. An odd trailing index is padded
// with a zero lower nibble. Indices above 15 are a programming error.
func Pack(indices []uint8) []byte {
	b := make([]byte, PackedLen(len(indices)))
	for i, idx := range indices {
		if idx > 0x0f {
			panic(fmt.Sprintf("codec: index %d at %d out of range", idx, i))
		}
		if i&1 == 0 {
			b[i>>1] = idx << 4
		} else {
			b[i>>1] |= idx & 0x0f
		}
	}
	return b
}

// Unpack returns the first n indices packed in b.
func Unpack(b []byte, n int) []uint8 {
	if n < 0 || PackedLen(n) > len(b) {
		panic(fmt.Sprintf("codec: %d bytes can't hold %d pixels", len(b), n))
	}
	indices := make([]uint8, n)
	for i := range indices {
		if i&1 == 0 {
			indices[i] = upperNibble(b[i>>1]) >> 4
		} else {
			indices[i] = lowerNibble(b[i>>1])
		}
	}
	return indices
}
