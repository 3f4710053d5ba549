/*
Package imgbin converts BMP images into the packed 4bpp VGA format, one file
at a time or a whole directory at once.
*/
package imgbin

import (
	"errors"
	"log"
	"runtime"

	"github.com/bodgit/imgbin/codec"
	"github.com/bodgit/imgbin/quantize"
)

// Options configures a Converter.
type Options struct {
	// Workers is the number of files converted concurrently by
	// ConvertDirectory. Zero means one per CPU.
	Workers int
}

func (o *Options) validate() error {
	if o.Workers < 0 {
		return errors.New("imgbin: workers must not be negative")
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	return nil
}

// Converter converts BMP files. All conversions share the one color cache.
type Converter struct {
	codec  *codec.Codec
	cache  *quantize.Cache
	store  *Store
	logger *log.Logger
	opts   Options
}

// New returns a Converter using cache for color lookups. store may be nil in
// which case every file is converted from scratch.
func New(cache *quantize.Cache, store *Store, logger *log.Logger, opts Options) (*Converter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = quantize.NewCache()
	}
	return &Converter{
		codec:  codec.New(cache),
		cache:  cache,
		store:  store,
		logger: logger,
		opts:   opts,
	}, nil
}
