// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-nmd/grid"
)

// Range and tick count of every default axis.
const (
	defaultLo, defaultHi = 0, 3
	defaultTicks         = 5
)

// registerDefaultAxes binds every column of g's table to a Static axis.
// The first cols/2 columns become inputs labeled x0, x1, ..., and the
// rest become outputs labeled y0, y1, .... It returns the labels in
// column order.
func registerDefaultAxes(g *grid.Grid) ([]string, error) {
	cols := g.Table().Cols()
	half := cols / 2
	labels := make([]string, cols)
	for c := 0; c < cols; c++ {
		role, label := grid.Input, fmt.Sprintf("x%d", c)
		if c >= half {
			role, label = grid.Output, fmt.Sprintf("y%d", c-half)
		}
		a, err := grid.NewStatic(role, c, defaultLo, defaultHi, defaultTicks, grid.WithLabel(label))
		if err != nil {
			return nil, err
		}
		if err := g.AddStaticAxis(a); err != nil {
			return nil, err
		}
		labels[c] = label
	}
	return labels, nil
}
