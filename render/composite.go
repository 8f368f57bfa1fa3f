// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a grid.Grid of any number of axes as a single
// 2D raster.
//
// Only one axis pair fits on a plane, so each further pair is drawn by
// stamping the previous pair's entire rendered plot as a small glyph at
// every sample of the next pair. Iteration 0 plots inputs[0] against
// outputs[0]. Iteration i plots inputs[i] against outputs[i] and places
// a copy of iteration i-1's raster, scaled to a tile, at each point.
// When one role runs out of axes its side is filled with a constant
// placeholder, so the number of iterations is the larger axis count.
//
// Each iteration's raster is written to a shared file and read back
// before the next iteration starts, so iterations are strictly
// sequential.
package render

import (
	"image"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/go-nmd/grid"
)

// A Presenter shows a finished raster to the user.
type Presenter interface {
	Present(title string, img image.Image) error
}

// Options configure a Renderer.
type Options struct {
	// Output is the shared intermediate raster path. It is
	// overwritten once per iteration.
	Output string

	// Width and Height are the raster size in pixels, drawn at DPI.
	Width, Height int
	DPI           int

	// GlyphSize bounds the longer side, in pixels, of the carried
	// image before it is stamped. 0 means no bound.
	GlyphSize int

	// Presenter, if non-nil, is shown the final titled raster.
	Presenter Presenter

	// Observe, if non-nil, is called with each iteration's raster
	// as read back from Output.
	Observe func(iter int, img image.Image)
}

// DefaultOptions returns the options used by the nmd command when
// nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Output:    "input/output.png",
		Width:     640,
		Height:    480,
		DPI:       100,
		GlyphSize: 256,
	}
}

const (
	baseWidth    = 3 // points
	contextWidth = 1 // points
)

// Renderer draws grids. A Renderer is not safe for concurrent use,
// since every render rewrites the same output file.
type Renderer struct {
	opts Options
	log  logrus.FieldLogger
}

// New returns a Renderer. If log is nil, the standard logrus logger is
// used.
func New(opts Options, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{opts: opts, log: log}
}

// Render draws g and returns the final raster, titled with g's name.
func (r *Renderer) Render(g *grid.Grid) (image.Image, error) {
	if r.opts.Width <= 0 || r.opts.Height <= 0 || r.opts.DPI <= 0 {
		return nil, errors.Wrapf(grid.ErrInvalidArgument, "raster size %dx%d at %d dpi", r.opts.Width, r.opts.Height, r.opts.DPI)
	}
	if r.opts.Output == "" {
		return nil, errors.Wrap(grid.ErrInvalidArgument, "no output path")
	}
	tab, inputs, outputs, err := bind(g)
	if err != nil {
		return nil, err
	}
	n := len(inputs)
	if len(outputs) > n {
		n = len(outputs)
	}

	var (
		p       *plot.Plot
		carried image.Image
	)
	for i := 0; i < n; i++ {
		pr := extract(tab, inputs, outputs, i)
		pr.settle()

		p = plot.New()
		pr.x.decorate(&p.X)
		pr.y.decorate(&p.Y)
		var layers []plot.Plotter
		if i == 0 {
			layers, err = base(pr)
		} else {
			layers, err = composite(pr, carried)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}
		p.Add(layers...)
		pr.x.limit(&p.X)
		pr.y.limit(&p.Y)

		var img image.Image
		img, err = r.persist(p)
		if err != nil {
			return nil, errors.Wrapf(err, "iteration %d", i)
		}
		r.log.WithFields(logrus.Fields{
			"iter":       i,
			"x":          pr.x.name(),
			"y":          pr.y.name(),
			"samples":    len(pr.x.vals),
			"degenerate": pr.x.flat || pr.y.flat,
		}).Debug("rendered axis pair")
		if r.opts.Observe != nil {
			r.opts.Observe(i, img)
		}
		carried = glyph(img, r.opts.GlyphSize)
	}

	p.Title.Text = g.Name()
	final := r.canvas(p).Image()
	if r.opts.Presenter != nil {
		if err := r.opts.Presenter.Present(g.Name(), final); err != nil {
			return nil, errors.Wrap(err, "presenting")
		}
	}
	return final, nil
}

// bind checks that g can be rendered and returns its table and axes.
func bind(g *grid.Grid) (*grid.Table, []grid.Axis, []grid.Axis, error) {
	tab := g.Table()
	if tab == nil {
		return nil, nil, nil, errors.Wrapf(grid.ErrInvalidArgument, "grid %q has no table", g.Name())
	}
	inputs, outputs := g.Inputs(), g.Outputs()
	if len(inputs) == 0 && len(outputs) == 0 {
		return nil, nil, nil, errors.Wrapf(grid.ErrInvalidArgument, "grid %q has no axes", g.Name())
	}
	for _, axes := range [][]grid.Axis{inputs, outputs} {
		for _, a := range axes {
			if a.Index() >= tab.Cols() {
				return nil, nil, nil, errors.Wrapf(grid.ErrInvalidArgument, "%v: table has %d columns", a, tab.Cols())
			}
		}
	}
	return tab, inputs, outputs, nil
}

func xys(pr pair) plotter.XYs {
	pts := make(plotter.XYs, len(pr.x.vals))
	for k := range pts {
		pts[k].X, pts[k].Y = pr.x.vals[k], pr.y.vals[k]
	}
	return pts
}

// base returns the layers of the first axis pair: one emphasized line.
func base(pr pair) ([]plot.Plotter, error) {
	l, err := plotter.NewLine(xys(pr))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(baseWidth)
	return []plot.Plotter{l}, nil
}

// composite returns the layers of a later axis pair: a thin line
// followed by one copy of stamp centered on each sample.
func composite(pr pair, stamp image.Image) ([]plot.Plotter, error) {
	pts := xys(pr)
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(contextWidth)
	layers := []plot.Plotter{l}

	w, h := pr.tile()
	for _, pt := range pts {
		layers = append(layers, plotter.NewImage(stamp, pt.X-w/2, pt.Y-h/2, pt.X+w/2, pt.Y+h/2))
	}
	return layers, nil
}
