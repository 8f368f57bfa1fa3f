// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo

package present

import (
	"image"

	"github.com/pkg/errors"
)

// Window would show the raster in a desktop window, but windows need
// cgo.
type Window struct{}

func (Window) Present(string, image.Image) error {
	return errors.New("window presenter requires cgo (build with CGO_ENABLED=1)")
}
