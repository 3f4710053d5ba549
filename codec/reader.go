package codec

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/imgbin/palette"
)

var (
	errNotEnough  = errors.New("codec: not enough image data")
	errTooMuch    = errors.New("codec: too much image data")
	errDimensions = errors.New("codec: invalid dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a packed image of the given size from r and returns it as an
// image.Paletted using the VGA palette.
func Decode(r io.Reader, width, height int) (*image.Paletted, error) {
	if width <= 0 || height <= 0 {
		return nil, errDimensions
	}

	n := width * height
	b := make([]byte, PackedLen(n))
	if err := readFull(r, b); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, errNotEnough
	}

	// ReadFull retries a (0, nil) read so only a real byte counts as trailing
	var tmp [1]byte
	switch _, err := io.ReadFull(r, tmp[:]); err {
	case nil:
		return nil, errTooMuch
	case io.EOF:
	default:
		return nil, err
	}

	m := image.NewPaletted(image.Rect(0, 0, width, height), palette.Colors)
	copy(m.Pix, Unpack(b, n))

	return m, nil
}
