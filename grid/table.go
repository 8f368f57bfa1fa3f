// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/pkg/errors"
)

// Table is a rectangular, non-empty matrix of samples. Rows are
// observations and columns are variables.
type Table struct {
	rows [][]float64
	cols int
}

// NewTable returns a Table holding a copy of rows. rows must be
// non-empty and every row must have the same, non-zero length.
func NewTable(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty table")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "table has no columns")
	}
	t := &Table{rows: make([][]float64, len(rows)), cols: cols}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrInvalidArgument, "row %d has %d columns, want %d", i, len(row), cols)
		}
		t.rows[i] = append([]float64(nil), row...)
	}
	return t, nil
}

// maxLine bounds the length of one table row.
const maxLine = 16 << 20

// ParseTable reads a comma-separated table of floating-point numbers
// from r, one row per line. There is no header row and no quoting.
// Blank lines are ignored.
func ParseTable(r io.Reader) (*Table, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLine)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "line %d, field %d: %q", lineno, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrParse, "line %d: %v", lineno+1, err)
	}

	return NewTable(rows)
}

// Rows returns the number of observations in t.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Cols returns the number of variables in t.
func (t *Table) Cols() int {
	return t.cols
}

// At returns the sample at row r, column c.
func (t *Table) At(r, c int) float64 {
	return t.rows[r][c]
}

// Column returns a copy of column c.
func (t *Table) Column(c int) []float64 {
	col := make([]float64, len(t.rows))
	for i, row := range t.rows {
		col[i] = row[c]
	}
	return col
}

// Frame returns t as a column-oriented gg table. Columns are named by
// names where given and by "c<index>" otherwise. A name already taken
// by an earlier column falls back to "c<index>", suffixed until unique.
func (t *Table) Frame(names ...string) *table.Table {
	b := new(table.Builder)
	seen := make(map[string]bool)
	for c := 0; c < t.cols; c++ {
		name := ""
		if c < len(names) {
			name = names[c]
		}
		if name == "" || seen[name] {
			name = fmt.Sprintf("c%d", c)
		}
		for i := 1; seen[name]; i++ {
			name = fmt.Sprintf("c%d_%d", c, i)
		}
		seen[name] = true
		b.Add(name, t.Column(c))
	}
	return b.Done()
}

// Fprint writes t to w as an aligned text table.
func (t *Table) Fprint(w io.Writer, names ...string) error {
	return table.Fprint(w, t.Frame(names...))
}
