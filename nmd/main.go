// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nmd draws a table of samples of a function of several
// variables as a single image.
//
// nmd takes a comma-separated file of numbers with one observation per
// line and a display name. The first half of the columns are treated as
// inputs and the rest as outputs. The first input is plotted against
// the first output; every further input/output pair is plotted with a
// shrunken copy of the previous plot stamped at each of its points, so
// zooming into any stamp shows the lower-order relationship.
//
// Each step's image is written to input/output.png (see --output) and
// the final image is shown according to --present.
//
// Settings can also come from the environment: NMD_OUTPUT, NMD_WIDTH,
// NMD_HEIGHT, NMD_DPI, NMD_GLYPH_SIZE, NMD_PRESENT, NMD_VIEWER, and
// NMD_LOG_LEVEL. Flags take precedence.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/aclements/go-nmd/grid"
	"github.com/aclements/go-nmd/internal/config"
	"github.com/aclements/go-nmd/internal/present"
	"github.com/aclements/go-nmd/render"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Debugf("%+v", err)
		log.Fatalf("%v", err)
	}
}

func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(grid.ErrInvalidArgument, err.Error())
	}

	app := kingpin.New("nmd", "Draw an N-dimensional table as one composite image.")
	app.Flag("output", "overwrite `path` with each step's raster").Default(cfg.Output).StringVar(&cfg.Output)
	app.Flag("present", "show the result in a window, with a viewer command, or not at all").Default(cfg.Present).EnumVar(&cfg.Present, config.Presenters...)
	app.Flag("viewer", "viewer command line for --present=command").Default(cfg.Viewer).StringVar(&cfg.Viewer)
	app.Flag("log-level", "log level: debug, info, warn, error").Default(cfg.LogLevel).StringVar(&cfg.LogLevel)
	flagTable := app.Flag("table", "print the table instead of drawing it").Bool()
	flagSVG := app.Flag("svg", "also write a vector plot of the first axis pair to `file`").String()
	positional := app.Arg("args", "table path and grid name").Strings()
	if _, err := app.Parse(args); err != nil {
		return errors.Wrap(grid.ErrInvalidArgument, err.Error())
	}
	if len(*positional) != 2 {
		return errors.Wrapf(grid.ErrInvalidArgument, "want table path and grid name, got %d arguments", len(*positional))
	}
	path, name := (*positional)[0], (*positional)[1]

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(grid.ErrInvalidArgument, err.Error())
	}
	log.SetLevel(cfg.Level())

	g := grid.New(name)
	if err := g.LoadTableFromPath(path); err != nil {
		return err
	}
	labels, err := registerDefaultAxes(g)
	if err != nil {
		return err
	}

	if *flagTable {
		return g.Table().Fprint(stdout, labels...)
	}

	if *flagSVG != "" {
		if err := writeSVG(*flagSVG, g); err != nil {
			return err
		}
	}

	pres, err := present.New(cfg.Present, cfg.Viewer, log)
	if err != nil {
		return err
	}
	r := render.New(render.Options{
		Output:    cfg.Output,
		Width:     cfg.Width,
		Height:    cfg.Height,
		DPI:       cfg.DPI,
		GlyphSize: cfg.GlyphSize,
		Presenter: pres,
	}, log)
	_, err = r.Render(g)
	return err
}

func writeSVG(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, g, 500, 350); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
