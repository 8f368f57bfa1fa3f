// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/pkg/errors"

// Errors returned by this package. They may be wrapped with additional
// context, so match them with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed axis, table, or call.
	ErrInvalidArgument = errors.New("grid: invalid argument")

	// ErrCardinality indicates a second Dynamic axis for one role.
	ErrCardinality = errors.New("grid: too many dynamic axes for role")

	// ErrDuplicateAxis indicates an axis index that is already registered.
	ErrDuplicateAxis = errors.New("grid: duplicate axis index")

	// ErrNotFound indicates a table path that is not an existing file.
	ErrNotFound = errors.New("grid: table file not found")

	// ErrSourceType indicates a table Source that is neither a path nor
	// in-memory data.
	ErrSourceType = errors.New("grid: table source is neither path nor data")

	// ErrParse indicates a table field that is not a float literal.
	ErrParse = errors.New("grid: malformed table field")
)
