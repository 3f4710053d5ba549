package imgbin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/imgbin/raster"
	"github.com/sergeymakinen/go-bmp"
)

const (
	inputExt  = ".bmp"
	outputExt = ".bin"
)

var (
	// ErrNotBMP is returned for input files without a .bmp extension.
	ErrNotBMP = errors.New("imgbin: not a BMP file")
	// ErrNotDirectory is returned when ConvertDirectory is given a file.
	ErrNotDirectory = errors.New("imgbin: not a directory")
	// ErrNoImages is returned when a directory contains no BMP files.
	ErrNoImages = errors.New("imgbin: no BMP files found")
)

func isBMP(file string) bool {
	return strings.EqualFold(filepath.Ext(file), inputExt)
}

func binName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + outputExt
}

// outputPath works out where the converted input is written. An empty output
// puts a .bin next to the input, an output with an extension is used as is
// and anything else is a directory that gets created.
func outputPath(input, output string) (string, error) {
	switch {
	case output == "":
		return filepath.Join(filepath.Dir(input), binName(input)), nil
	case filepath.Ext(output) != "":
		return output, nil
	default:
		if err := os.MkdirAll(output, 0777); err != nil {
			return "", err
		}
		return filepath.Join(output, binName(input)), nil
	}
}

// ConvertFile converts the BMP image in input and writes it to output, which
// is resolved as described for the convert command. A failure is reported in
// the Result, never returned.
func (c *Converter) ConvertFile(ctx context.Context, input, output string) Result {
	result := Result{Input: input}

	if !isBMP(input) {
		c.logger.Printf("Skipping %s: not a BMP file.\n", filepath.Base(input))
		result.Err = ErrNotBMP
		return result
	}

	if result.Err = ctx.Err(); result.Err != nil {
		return result
	}

	if result.Output, result.Err = outputPath(input, output); result.Err != nil {
		return result
	}

	b, err := os.ReadFile(input)
	if err != nil {
		result.Err = err
		return result
	}

	c.logger.Printf("Processing %s...\n", filepath.Base(input))

	conv, err := c.convert(b)
	if err != nil {
		result.Err = err
		return result
	}
	result.Width, result.Height, result.Cached = conv.Width, conv.Height, conv.cached

	c.logger.Printf("Image size: %dx%d pixels\n", conv.Width, conv.Height)

	if result.Err = os.WriteFile(result.Output, conv.Data, 0666); result.Err != nil {
		return result
	}
	result.Size = len(conv.Data)

	c.logger.Printf("Successfully converted to %s\n", result.Output)
	c.logger.Printf("Output file size: %d bytes\n", result.Size)

	return result
}

type conversion struct {
	Conversion
	cached bool
}

func (c *Converter) convert(b []byte) (*conversion, error) {
	var sha string
	if c.store != nil {
		sha = checksum(b)
		stored, err := c.store.Find(sha)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return &conversion{Conversion: *stored, cached: true}, nil
		}
	}

	m, err := bmp.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	r := raster.FromImage(m)
	conv := &conversion{
		Conversion: Conversion{
			Width:  r.Width,
			Height: r.Height,
			Data:   c.codec.Convert(r),
		},
	}

	if c.store != nil {
		if err := c.store.Add(sha, &conv.Conversion); err != nil {
			return nil, err
		}
	}

	return conv, nil
}
