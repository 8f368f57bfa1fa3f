// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-nmd/grid"
)

// WriteSVG writes a vector line plot of g's first axis pair to w. This
// is the base case of Render without any compositing, which makes it a
// quick way to inspect the innermost relationship at full resolution.
func WriteSVG(w io.Writer, g *grid.Grid, width, height int) error {
	tab, inputs, outputs, err := bind(g)
	if err != nil {
		return err
	}
	pr := extract(tab, inputs, outputs, 0)
	pr.settle()

	data := new(table.Builder).
		Add("x", pr.x.vals).
		Add("y", pr.y.vals).
		Done()
	p := gg.NewPlot(data)
	p.Add(gg.LayerLines{X: "x", Y: "y"})
	p.Add(gg.AxisLabel("x", pr.x.name()), gg.AxisLabel("y", pr.y.name()))
	p.Add(gg.Title(g.Name()))
	return p.WriteSVG(w, width, height)
}
