// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"

	"github.com/aclements/go-nmd/grid"
)

// placeholder stands in for every sample of a role that has run out of
// axes, so both sides of a pair always have one value per table row.
const placeholder = 0.5

// A side is one dimension of an axis pair as it will be plotted.
type side struct {
	axis *grid.Axis // nil for the placeholder
	vals []float64

	// flat is set when every sample was equal and the side was
	// recentered on [0, hi]. Its ticks carry no information.
	flat bool
	hi   float64
}

// A pair is the x (input) and y (output) data of one iteration.
type pair struct {
	x, y side
}

// extract returns the i'th axis pair of tab.
func extract(tab *grid.Table, inputs, outputs []grid.Axis, i int) pair {
	return pair{
		x: column(tab, inputs, i),
		y: column(tab, outputs, i),
	}
}

func column(tab *grid.Table, axes []grid.Axis, i int) side {
	if i < len(axes) {
		a := axes[i]
		return side{axis: &a, vals: tab.Column(a.Index())}
	}
	vals := make([]float64, tab.Rows())
	for k := range vals {
		vals[k] = placeholder
	}
	return side{vals: vals}
}

// settle recenters constant sides. A constant y is drawn as a flat line
// at max(x)/2 in the range [0, max(x)], and symmetrically for a
// constant x. Both maxima are taken before either side is rewritten, so
// when both sides are constant x is centered at max(y)/2 of the original
// y values, not of the recentered ones.
func (p *pair) settle() {
	_, maxX := stats.Bounds(p.x.vals)
	_, maxY := stats.Bounds(p.y.vals)
	if constant(p.y.vals) {
		p.y.center(maxX)
	}
	if constant(p.x.vals) {
		p.x.center(maxY)
	}
}

func (s *side) center(hi float64) {
	s.flat, s.hi = true, hi
	for k := range s.vals {
		s.vals[k] = hi / 2
	}
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// tile returns the extent of the glyph stamped at each sample. An
// extent that collapses to zero falls back to the other side's
// maximum, and failing that to 1.
func (p pair) tile() (w, h float64) {
	n := float64(len(p.x.vals))
	minX, maxX := stats.Bounds(p.x.vals)
	minY, maxY := stats.Bounds(p.y.vals)
	w = (maxX - minX) / n
	h = (maxY - minY) / n
	if w == 0 {
		w = math.Abs(maxY)
	}
	if h == 0 {
		h = math.Abs(maxX)
	}
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h
}

// decorate labels ax and picks its ticker.
func (s side) decorate(ax *plot.Axis) {
	if s.axis != nil {
		ax.Label.Text = s.axis.Label()
		switch s.axis.Kind() {
		case grid.Static:
			ax.Tick.Marker = staticTicks{n: s.axis.TickCount()}
		case grid.Dynamic:
			ax.Tick.Marker = plot.DefaultTicks{}
		}
	}
	if s.flat {
		ax.Tick.Marker = plot.ConstantTicks(nil)
	}
}

// limit pins ax to the recentered range of a flat side. It must run
// after all plotters are added, since adding widens the range.
func (s side) limit(ax *plot.Axis) {
	if s.flat {
		ax.Min, ax.Max = 0, s.hi
	}
}

func (s side) name() string {
	if s.axis == nil {
		return "placeholder"
	}
	if l := s.axis.Label(); l != "" {
		return l
	}
	return s.axis.String()
}
