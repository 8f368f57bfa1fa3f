// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package present

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window shows the raster in a desktop window. Present blocks until the
// window is closed or Escape is pressed.
type Window struct{}

func (Window) Present(title string, img image.Image) error {
	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&viewer{src: img})
}

type viewer struct {
	src image.Image
	img *ebiten.Image
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.src.Bounds()
	return b.Dx(), b.Dy()
}
