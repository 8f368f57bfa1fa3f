// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// staticTicks places at most n labeled major ticks (and unlabeled minor
// ticks between them) at round decimal values.
type staticTicks struct {
	n int
}

func (t staticTicks) Ticks(min, max float64) []plot.Tick {
	if t.n <= 0 {
		return nil
	}
	if !(min < max) {
		return []plot.Tick{{Value: min, Label: formatTick(min)}}
	}

	s := scale.Linear{Min: min, Max: max, Base: 10}
	major, minor := s.Ticks(scale.TickOptions{Max: t.n})

	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	labeled := make(map[float64]bool, len(major))
	for _, v := range major {
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
		labeled[v] = true
	}
	for _, v := range minor {
		if !labeled[v] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
