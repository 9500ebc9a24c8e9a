package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/x1pcg"
	"github.com/bodgit/x1pcg/pcg"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*x1pcg.Converter, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	layout, err := pcg.ParseLayout(c.String("layout"))
	if err != nil {
		return nil, err
	}

	return x1pcg.New(c.String("db"), layout, logger)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "x1pcg"
	app.Usage = "Sharp X1 PCG conversion utility"
	app.Description = "Converts 8 color images, already reduced and sized, into PCG character data.\n\n" +
		"Arguments matching a command name (scan, preview, merge, list) are taken as that command, " +
		"so refer to such a file with a path, for example ./scan"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE..."

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"X1PCG_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.StringFlag{
			Name:  "layout",
			Value: pcg.CharacterLayout.String(),
			Usage: "glyph layout: char writes each 8x8 block as one character as the X1 loads it, row concatenates full-width rows per group of eight",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		m, err := newConverter(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer m.Close()

		for _, file := range c.Args().Slice() {
			if _, err := m.ConvertFile(file); err != nil {
				return cli.NewExitError(err, 1)
			}
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:        "scan",
			Usage:       "Convert every PNG image beneath a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a PCG file as a PNG image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "path to write image to",
				},
				&cli.BoolFlag{
					Name:    "wide",
					Aliases: []string{"w"},
					Usage:   "double the width of each character",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				file := c.Args().First()
				out := c.String("output")
				if out == "" {
					out = x1pcg.PreviewName(file)
				}

				if err := m.Preview(file, out, c.Bool("wide")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "merge",
			Usage:       "Combine PCG files into a full character bank",
			Description: "",
			ArgsUsage:   "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Usage:    "path to write bank to",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Merge(c.String("output"), c.Args().Slice()...); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List conversions held in the cache database",
			Description: "",
			Action: func(c *cli.Context) error {
				m, err := newConverter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				db := m.CacheDB()
				if db == nil {
					return cli.NewExitError(errors.New("no cache database given"), 1)
				}

				entries, err := db.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("%s\t%s\t%s\t%dx%d\t%d\n", e.SHA1, e.Layout, e.Path, e.Width, e.Height, e.Size)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
