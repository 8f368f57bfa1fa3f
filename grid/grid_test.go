// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aclements/go-nmd/grid"
)

func mustStatic(t *testing.T, role grid.Role, index int) grid.Axis {
	t.Helper()
	a, err := grid.NewStatic(role, index, 0, 3, 5)
	require.NoError(t, err)
	return a
}

func mustDynamic(t *testing.T, role grid.Role, index int) grid.Axis {
	t.Helper()
	a, err := grid.NewDynamic(role, index)
	require.NoError(t, err)
	return a
}

func TestAddAxisOrder(t *testing.T) {
	g := grid.New("demo")
	require.NoError(t, g.AddStaticAxis(mustStatic(t, grid.Input, 2)))
	require.NoError(t, g.AddStaticAxis(mustStatic(t, grid.Output, 0)))
	require.NoError(t, g.AddDynamicAxis(mustDynamic(t, grid.Input, 1)))
	require.NoError(t, g.AddAxis(mustStatic(t, grid.Output, 3)))

	var in, out []int
	for _, a := range g.Inputs() {
		in = append(in, a.Index())
	}
	for _, a := range g.Outputs() {
		out = append(out, a.Index())
	}
	require.Equal(t, []int{2, 1}, in)
	require.Equal(t, []int{0, 3}, out)

	require.Equal(t, 1, g.CountOf(grid.Static, grid.Input))
	require.Equal(t, 1, g.CountOf(grid.Dynamic, grid.Input))
	require.Equal(t, 2, g.CountOf(grid.Static, grid.Output))
	require.Equal(t, 0, g.CountOf(grid.Dynamic, grid.Output))
}

func TestDynamicCardinality(t *testing.T) {
	g := grid.New("a")
	require.NoError(t, g.AddDynamicAxis(mustDynamic(t, grid.Input, 0)))
	err := g.AddDynamicAxis(mustDynamic(t, grid.Input, 1))
	require.ErrorIs(t, err, grid.ErrCardinality)
	require.Len(t, g.Inputs(), 1)

	// The other role is unaffected.
	require.NoError(t, g.AddDynamicAxis(mustDynamic(t, grid.Output, 2)))

	// Static axes don't count against the cap.
	require.NoError(t, g.AddStaticAxis(mustStatic(t, grid.Input, 3)))

	// Each grid has its own cap.
	h := grid.New("b")
	require.NoError(t, h.AddDynamicAxis(mustDynamic(t, grid.Output, 0)))
	err = h.AddDynamicAxis(mustDynamic(t, grid.Output, 1))
	require.ErrorIs(t, err, grid.ErrCardinality)
	require.Len(t, h.Outputs(), 1)
	require.Empty(t, h.Inputs())
}

func TestDuplicateIndex(t *testing.T) {
	for _, test := range []struct {
		name        string
		first, next grid.Axis
	}{
		{"static/static", mustStatic(t, grid.Input, 1), mustStatic(t, grid.Output, 1)},
		{"static/dynamic", mustStatic(t, grid.Input, 1), mustDynamic(t, grid.Input, 1)},
		{"dynamic/static", mustDynamic(t, grid.Output, 1), mustStatic(t, grid.Input, 1)},
		{"dynamic/dynamic", mustDynamic(t, grid.Input, 1), mustDynamic(t, grid.Output, 1)},
		{"same axis twice", mustStatic(t, grid.Input, 1), mustStatic(t, grid.Input, 1)},
	} {
		g := grid.New(test.name)
		require.NoError(t, g.AddAxis(test.first))
		err := g.AddAxis(test.next)
		require.ErrorIsf(t, err, grid.ErrDuplicateAxis, "%s", test.name)
		require.Equalf(t, 1, len(g.Inputs())+len(g.Outputs()), "%s", test.name)
	}
}

func TestAddWrongKind(t *testing.T) {
	g := grid.New("k")
	require.ErrorIs(t, g.AddStaticAxis(mustDynamic(t, grid.Input, 0)), grid.ErrInvalidArgument)
	require.ErrorIs(t, g.AddDynamicAxis(mustStatic(t, grid.Input, 0)), grid.ErrInvalidArgument)
	require.Empty(t, g.Inputs())
}

func TestGridsDoNotShareAxes(t *testing.T) {
	g, h := grid.New("g"), grid.New("h")
	require.NoError(t, g.AddStaticAxis(mustStatic(t, grid.Input, 0)))
	require.Empty(t, h.Inputs())

	// Mutating a returned slice doesn't reach the grid.
	in := g.Inputs()
	in[0] = mustStatic(t, grid.Input, 9)
	require.Equal(t, 0, g.Inputs()[0].Index())
}

func TestSetTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,1,2,3\n4,5,6,7.5\n-8,9e1,10,11\n"), 0o644))

	g := grid.New("t")
	require.NoError(t, g.SetTable(grid.FromPath(path)))
	tab := g.Table()
	require.Equal(t, 3, tab.Rows())
	require.Equal(t, 4, tab.Cols())
	require.Equal(t, []float64{0, 4, -8}, tab.Column(0))
	require.Equal(t, []float64{1, 5, 90}, tab.Column(1))
	require.Equal(t, 7.5, tab.At(1, 3))

	// Attaching replaces the previous table.
	require.NoError(t, g.SetTable(grid.FromData([][]float64{{1, 2}})))
	require.Equal(t, 1, g.Table().Rows())
	require.Equal(t, 2, g.Table().Cols())
}

func TestSetTableErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("1,2\n3,x\n"), 0o644))
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	for _, test := range []struct {
		name string
		src  grid.Source
		want error
	}{
		{"missing", grid.FromPath(filepath.Join(dir, "nope.csv")), grid.ErrNotFound},
		{"directory", grid.FromPath(dir), grid.ErrNotFound},
		{"zero source", grid.Source{}, grid.ErrSourceType},
		{"malformed", grid.FromPath(bad), grid.ErrParse},
		{"empty file", grid.FromPath(empty), grid.ErrInvalidArgument},
		{"empty data", grid.FromData(nil), grid.ErrInvalidArgument},
		{"ragged data", grid.FromData([][]float64{{1, 2}, {3}}), grid.ErrInvalidArgument},
	} {
		g := grid.New(test.name)
		require.NoError(t, g.SetTableData([][]float64{{42}}))
		err := g.SetTable(test.src)
		require.ErrorIsf(t, err, test.want, "%s", test.name)
		require.Equalf(t, 42.0, g.Table().At(0, 0), "%s: table replaced on failure", test.name)
	}
}

func TestSetTableDataCopies(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	g := grid.New("c")
	require.NoError(t, g.SetTableData(rows))
	rows[0][0] = 100
	require.Equal(t, 1.0, g.Table().At(0, 0))
}
