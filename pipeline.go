package imgbin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
)

// findImages lists the BMP files directly inside dir.
func findImages(dir string) ([]string, error) {
	var files []string
	if err := filepath.Walk(dir, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if file == dir {
			return nil
		}

		// Don't descend into subdirectories
		if info.Mode().IsDir() {
			return filepath.SkipDir
		}

		// Ignore any hidden files, otherwise we end up fighting with things like Spotlight, etc.
		if info.Name()[0] == '.' {
			return nil
		}

		// Ignore anything that isn't a normal file
		if !info.Mode().IsRegular() {
			return nil
		}

		if isBMP(file) {
			files = append(files, file)
		}

		return nil
	}); err != nil {
		return nil, err
	}
	return files, nil
}

func feedImages(ctx context.Context, files []string) (<-chan string, func() error) {
	out := make(chan string)
	return out, func() error {
		defer close(out)
		for _, file := range files {
			select {
			case out <- file:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}
}

func (c *Converter) imageWorker(ctx context.Context, in <-chan string, output string, results chan<- Result) func() error {
	return func() error {
		for file := range in {
			out := ""
			if output != "" {
				out = filepath.Join(output, binName(file))
			}
			results <- c.ConvertFile(ctx, file, out)
		}
		return nil
	}
}

// ConvertDirectory converts every BMP file directly inside dir. Converted
// files are written to the output directory, created if necessary, or next
// to their source when output is empty. Individual failures are reported in
// the Summary, only a problem with dir itself or ctx is returned as an error.
func (c *Converter) ConvertDirectory(ctx context.Context, dir, output string) (Summary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Summary{}, err
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	if output != "" {
		if err := os.MkdirAll(output, 0777); err != nil {
			return Summary{}, err
		}
	}

	files, err := findImages(dir)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("%s: %w", dir, ErrNoImages)
	}

	c.logger.Printf("Found %d BMP files in %s\n", len(files), dir)

	g, ctx := errgroup.WithContext(ctx)

	in, feed := feedImages(ctx, files)
	g.Go(feed)

	results := make(chan Result, len(files))
	for i := 0; i < c.opts.Workers; i++ {
		g.Go(c.imageWorker(ctx, in, output, results))
	}

	err = g.Wait()
	close(results)

	var summary Summary
	for r := range results {
		summary.Results = append(summary.Results, r)
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Input < summary.Results[j].Input
	})

	if err != nil {
		return summary, err
	}

	c.logger.Printf("Processing complete: %d/%d files converted successfully\n", summary.Converted(), summary.Total())

	return summary, nil
}
