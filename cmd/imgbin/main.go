package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bodgit/imgbin"
	"github.com/bodgit/imgbin/codec"
	"github.com/bodgit/imgbin/palette"
	"github.com/bodgit/imgbin/quantize"
	"github.com/urfave/cli/v2"
)

// Shared by every conversion for the lifetime of the process
var cache = quantize.NewCache()

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "increase verbosity",
	}
}

// verbose is accepted either side of the command name. c.Bool only looks at
// the nearest context defining the flag so walk all of them.
func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	for _, ctx := range c.Lineage() {
		if ctx != nil && ctx.Bool("verbose") {
			logger.SetOutput(os.Stderr)
			break
		}
	}
	return logger
}

func openStore(c *cli.Context) (*imgbin.Store, error) {
	if c.String("db") == "" {
		return nil, nil
	}
	return imgbin.NewStore(c.String("db"))
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	store, err := openStore(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if store != nil {
		defer store.Close()
	}

	conv, err := imgbin.New(cache, store, newLogger(c), imgbin.Options{
		Workers: c.Int("workers"),
	})
	if err != nil {
		return cli.Exit(err, 1)
	}

	input, output := c.Args().First(), c.String("output")

	if info, err := os.Stat(input); err == nil && info.IsDir() {
		s, err := conv.ConvertDirectory(c.Context, input, output)
		for _, r := range s.Failed() {
			log.Printf("Error processing %s: %v\n", filepath.Base(r.Input), r.Err)
		}
		if err != nil {
			return cli.Exit(err, 1)
		}
		if !s.OK() {
			return cli.Exit(fmt.Sprintf("no files converted in %s", input), 1)
		}
		return nil
	}

	if r := conv.ConvertFile(c.Context, input, output); r.Err != nil {
		return cli.Exit(fmt.Sprintf("Error processing %s: %v", filepath.Base(input), r.Err), 1)
	}

	return nil
}

func decode(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	input := c.Args().First()
	output := c.String("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}

	f, err := os.Open(input)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	m, err := codec.Decode(f, c.Int("width"), c.Int("height"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	w, err := os.Create(output)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer w.Close()

	if err := png.Encode(w, m); err != nil {
		return cli.Exit(err, 1)
	}

	newLogger(c).Printf("Preview written to %s\n", output)

	return nil
}

func listPalette(c *cli.Context) error {
	for i, e := range palette.Entries() {
		fmt.Fprintf(c.App.Writer, "%2d  %-10s 0x%02X  %s\n", i, e.Name, e.Attribute, palette.Hex(i))
	}
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "imgbin"
	app.Usage = "Convert BMP images to a packed 4bpp VGA format"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"IMGBIN_DB"},
			Usage:   "path to database of previous conversions",
		},
		verboseFlag(),
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a BMP file or a directory of BMP files",
			Description: "Output is written next to the input unless --output is given. An output with an extension is used as the file name, otherwise it is a directory.",
			ArgsUsage:   "FILE|DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output directory or file path",
				},
				&cli.IntFlag{
					Name:    "workers",
					Aliases: []string{"w"},
					EnvVars: []string{"IMGBIN_WORKERS"},
					Value:   runtime.NumCPU(),
					Usage:   "number of files converted at once",
				},
				verboseFlag(),
			},
			Action: convert,
		},
		{
			Name:      "decode",
			Usage:     "Render a packed image as a PNG preview",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "width",
					Required: true,
					Usage:    "image width in pixels",
				},
				&cli.IntFlag{
					Name:     "height",
					Required: true,
					Usage:    "image height in pixels",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "path of the PNG to write",
				},
				verboseFlag(),
			},
			Action: decode,
		},
		{
			Name:   "palette",
			Usage:  "List the palette",
			Action: listPalette,
		},
	}

	return app
}

func main() {
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
