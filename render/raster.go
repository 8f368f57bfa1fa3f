// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// canvas draws p onto a fresh white raster of the configured size.
func (r *Renderer) canvas(p *plot.Plot) *vgimg.Canvas {
	dpi := vg.Length(r.opts.DPI)
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.opts.Width)*vg.Inch/dpi, vg.Length(r.opts.Height)*vg.Inch/dpi),
		vgimg.UseDPI(r.opts.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(vgdraw.New(c))
	return c
}

// persist draws p, writes it to the shared output path, and reads it
// back. The PNG is written to a temporary file and renamed into place,
// so a reader never observes a partial raster.
func (r *Renderer) persist(p *plot.Plot) (image.Image, error) {
	c := r.canvas(p)

	dir := filepath.Dir(r.opts.Output)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}
	f, err := os.CreateTemp(dir, ".nmd-*.png")
	if err != nil {
		return nil, errors.Wrap(err, "creating raster")
	}
	tmp := f.Name()
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, errors.Wrap(err, "encoding raster")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return nil, errors.Wrap(err, "writing raster")
	}
	if err := os.Rename(tmp, r.opts.Output); err != nil {
		os.Remove(tmp)
		return nil, errors.Wrap(err, "replacing raster")
	}

	return load(r.opts.Output)
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reloading raster")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}

// glyph returns src scaled down so its longer side is at most limit
// pixels. Smaller images are returned as is.
func glyph(src image.Image, limit int) image.Image {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if limit <= 0 || (w <= limit && h <= limit) {
		return src
	}
	if w >= h {
		w, h = limit, h*limit/w
	} else {
		w, h = w*limit/h, limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst
}
