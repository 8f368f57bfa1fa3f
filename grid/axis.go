// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Role says whether an axis is an independent (input) or dependent
// (output) variable of the table.
type Role int

const (
	Input Role = iota
	Output
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Kind distinguishes Static axes, which declare a numeric range and a
// tick count, from Dynamic axes, which declare neither.
type Kind int

const (
	Static Kind = iota
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Axis binds one table column to a role. Axes are values: once
// constructed, nothing about them changes.
type Axis struct {
	kind  Kind
	role  Role
	index int
	label string

	// Static only.
	lo, hi float64
	ticks  int

	start    float64
	hasStart bool
}

// An AxisOption configures an optional property of a new Axis.
type AxisOption func(*Axis)

// WithStart sets the axis' reference starting value.
func WithStart(v float64) AxisOption {
	return func(a *Axis) {
		a.start, a.hasStart = v, true
	}
}

// WithLabel sets the axis' display label.
func WithLabel(label string) AxisOption {
	return func(a *Axis) {
		a.label = label
	}
}

// NewStatic returns a Static axis reading column index over the closed
// range [lo, hi], requesting ticks major ticks on display.
//
// If WithStart is given, the starting value must lie in [lo, hi].
// Otherwise it defaults to floor(|hi-lo|/2).
func NewStatic(role Role, index int, lo, hi float64, ticks int, opts ...AxisOption) (Axis, error) {
	a, err := newAxis(Static, role, index, opts)
	if err != nil {
		return Axis{}, err
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Axis{}, errors.Wrapf(ErrInvalidArgument, "range [%v, %v]", lo, hi)
	}
	if ticks < 0 {
		return Axis{}, errors.Wrapf(ErrInvalidArgument, "tick count %d", ticks)
	}
	a.lo, a.hi, a.ticks = lo, hi, ticks

	if a.hasStart {
		if !(lo <= a.start && a.start <= hi) {
			return Axis{}, errors.Wrapf(ErrInvalidArgument, "starting value %v outside [%v, %v]", a.start, lo, hi)
		}
	} else {
		a.start, a.hasStart = math.Floor(math.Abs(hi-lo)/2), true
	}
	return a, nil
}

// NewDynamic returns a Dynamic axis reading column index. Dynamic axes
// have no declared range, so any starting value is accepted.
func NewDynamic(role Role, index int, opts ...AxisOption) (Axis, error) {
	return newAxis(Dynamic, role, index, opts)
}

func newAxis(kind Kind, role Role, index int, opts []AxisOption) (Axis, error) {
	if role != Input && role != Output {
		return Axis{}, errors.Wrapf(ErrInvalidArgument, "role %v", role)
	}
	if index < 0 {
		return Axis{}, errors.Wrapf(ErrInvalidArgument, "column index %d", index)
	}
	a := Axis{kind: kind, role: role, index: index}
	for _, opt := range opts {
		opt(&a)
	}
	return a, nil
}

// Kind returns whether a is Static or Dynamic.
func (a Axis) Kind() Kind { return a.kind }

// Role returns whether a is an input or output axis.
func (a Axis) Role() Role { return a.role }

// Index returns the table column a reads.
func (a Axis) Index() int { return a.index }

// Label returns a's display label, which may be empty.
func (a Axis) Label() string { return a.label }

// Range returns the declared range of a Static axis. ok is false for
// Dynamic axes.
func (a Axis) Range() (lo, hi float64, ok bool) {
	switch a.kind {
	case Static:
		return a.lo, a.hi, true
	case Dynamic:
		return 0, 0, false
	}
	panic("unknown axis kind " + a.kind.String())
}

// TickCount returns the number of major ticks a Static axis requests,
// or 0 for a Dynamic axis.
func (a Axis) TickCount() int {
	switch a.kind {
	case Static:
		return a.ticks
	case Dynamic:
		return 0
	}
	panic("unknown axis kind " + a.kind.String())
}

// Start returns the axis' reference starting value. ok is false for a
// Dynamic axis constructed without WithStart.
func (a Axis) Start() (v float64, ok bool) {
	return a.start, a.hasStart
}

func (a Axis) String() string {
	s := fmt.Sprintf("%s %s axis %d", a.kind, a.role, a.index)
	if a.label != "" {
		s += fmt.Sprintf(" (%s)", a.label)
	}
	return s
}
