package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/minipng"
	"github.com/bodgit/minipng/catalog"
	"github.com/urfave/cli/v2"
)

const defaultCatalog = "minipng.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func printInfo(w io.Writer, f *minipng.File) {
	fmt.Fprintln(w, f.Header)
	for _, c := range f.Comments {
		fmt.Fprintln(w, c)
	}
	if f.HasPalette() {
		fmt.Fprintln(w, f.Palette)
	}
}

func load(c *cli.Context) (*minipng.File, minipng.Image, error) {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	b, err := minipng.ReadFile(c.Args().First())
	if err != nil {
		return nil, nil, err
	}

	f, m, err := minipng.Load(b)
	if err != nil {
		return nil, nil, err
	}
	if f.Skipped > 0 {
		logger.Printf("Skipped %d unknown block(s)\n", f.Skipped)
	}

	return f, m, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "minipng"
	app.Usage = "Mini-PNG image inspection utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			EnvVars: []string{"MINIPNG_CATALOG"},
			Value:   filepath.Join(cwd, defaultCatalog),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Print the header, comments and palette of a file",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				f, _, err := load(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				printInfo(os.Stdout, f)

				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Print the file information and render the image",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce the image to at most this many colors",
				},
			},
			Action: func(c *cli.Context) error {
				f, m, err := load(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if n := c.Int("colors"); n > 0 {
					if m, err = minipng.Quantize(m, n); err != nil {
						return cli.Exit(err, 1)
					}
				}

				printInfo(os.Stdout, f)

				if err := m.Display(os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan filesystem and catalog Mini-PNG files",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of files to decode concurrently",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := catalog.New(c.String("catalog"), newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := db.Scan(context.Background(), c.Args().First(), c.Int("workers")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List cataloged files",
			Action: func(c *cli.Context) error {
				db, err := catalog.New(c.String("catalog"), newLogger(c))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				entries, err := db.List()
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("%s\t%dx%d\t%s\t%s\n", e.Path, e.Width, e.Height, e.PixelType, e.Digest)
					for _, comment := range e.Comments {
						fmt.Printf("\t%s\n", comment)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
