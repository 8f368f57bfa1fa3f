// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid describes multi-dimensional numeric tables whose columns
// are classified as input or output axes.
//
// A Grid is built empty, axes are registered against its table's column
// indices, and a Table is attached. Insertion order of axes is
// significant: the i'th input axis is paired with the i'th output axis
// when the grid is rendered.
package grid

import (
	"os"

	"github.com/pkg/errors"
)

// Grid is an ordered set of input and output axes over one Table.
type Grid struct {
	name    string
	inputs  []Axis
	outputs []Axis
	table   *Table
}

// New returns an empty Grid displayed as name.
func New(name string) *Grid {
	return &Grid{
		name:    name,
		inputs:  []Axis{},
		outputs: []Axis{},
	}
}

// Name returns g's display name.
func (g *Grid) Name() string {
	return g.name
}

// Inputs returns g's input axes in registration order.
func (g *Grid) Inputs() []Axis {
	return append([]Axis(nil), g.inputs...)
}

// Outputs returns g's output axes in registration order.
func (g *Grid) Outputs() []Axis {
	return append([]Axis(nil), g.outputs...)
}

// Table returns the attached table, or nil if none is attached.
func (g *Grid) Table() *Table {
	return g.table
}

// AddAxis registers a with g according to its kind.
func (g *Grid) AddAxis(a Axis) error {
	switch a.Kind() {
	case Static:
		return g.AddStaticAxis(a)
	case Dynamic:
		return g.AddDynamicAxis(a)
	}
	return errors.Wrapf(ErrInvalidArgument, "unknown axis kind %v", a.Kind())
}

// AddStaticAxis appends a Static axis to g's inputs or outputs
// according to its role.
func (g *Grid) AddStaticAxis(a Axis) error {
	if a.Kind() != Static {
		return errors.Wrapf(ErrInvalidArgument, "%v is not static", a)
	}
	if err := g.checkIndex(a); err != nil {
		return err
	}
	g.appendAxis(a)
	return nil
}

// AddDynamicAxis appends a Dynamic axis to g's inputs or outputs
// according to its role. Each role holds at most one Dynamic axis.
func (g *Grid) AddDynamicAxis(a Axis) error {
	if a.Kind() != Dynamic {
		return errors.Wrapf(ErrInvalidArgument, "%v is not dynamic", a)
	}
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if g.CountOf(Dynamic, a.Role()) >= 1 {
		return errors.Wrapf(ErrCardinality, "%s already has a dynamic axis", a.Role())
	}
	g.appendAxis(a)
	return nil
}

// CountOf returns the number of axes of the given kind and role.
func (g *Grid) CountOf(kind Kind, role Role) int {
	n := 0
	for _, a := range g.axes(role) {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

func (g *Grid) axes(role Role) []Axis {
	if role == Input {
		return g.inputs
	}
	return g.outputs
}

// checkIndex fails if a's column is already bound by any axis of g.
func (g *Grid) checkIndex(a Axis) error {
	for _, axes := range [][]Axis{g.inputs, g.outputs} {
		for _, b := range axes {
			if b.Index() == a.Index() {
				return errors.Wrapf(ErrDuplicateAxis, "column %d already bound to %v", a.Index(), b)
			}
		}
	}
	return nil
}

func (g *Grid) appendAxis(a Axis) {
	if a.Role() == Input {
		g.inputs = append(g.inputs, a)
	} else {
		g.outputs = append(g.outputs, a)
	}
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourcePath
	sourceData
)

// Source is where a Grid's table comes from: either a file path or an
// in-memory matrix. The zero Source is neither.
type Source struct {
	kind sourceKind
	path string
	data [][]float64
}

// FromPath returns a Source that reads a comma-separated table file.
func FromPath(path string) Source {
	return Source{kind: sourcePath, path: path}
}

// FromData returns a Source for an in-memory matrix.
func FromData(rows [][]float64) Source {
	return Source{kind: sourceData, data: rows}
}

// SetTable attaches the table described by src to g, replacing any
// previously attached table. On failure g is unchanged.
func (g *Grid) SetTable(src Source) error {
	switch src.kind {
	case sourcePath:
		return g.LoadTableFromPath(src.path)
	case sourceData:
		return g.SetTableData(src.data)
	}
	return ErrSourceType
}

// SetTableData attaches a copy of rows to g.
func (g *Grid) SetTableData(rows [][]float64) error {
	t, err := NewTable(rows)
	if err != nil {
		return err
	}
	g.table = t
	return nil
}

// LoadTableFromPath parses the comma-separated table file at path and
// attaches it to g.
func (g *Grid) LoadTableFromPath(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrNotFound, path)
		}
		return errors.Wrapf(err, "reading table %s", path)
	}
	if !fi.Mode().IsRegular() {
		return errors.Wrapf(ErrNotFound, "%s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "reading table %s", path)
	}
	defer f.Close()

	t, err := ParseTable(f)
	if err != nil {
		return errors.Wrap(err, path)
	}
	g.table = t
	return nil
}
