// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package present shows a finished raster to the user.
package present

import (
	"image"
	"image/png"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aclements/go-nmd/render"
)

// New returns the presenter named by kind, which is one of "auto",
// "window", "command", or "none". viewer is the command line for the
// "command" presenter.
//
// "auto" shows nothing when stdout is not a terminal, runs viewer if
// one is given, and otherwise opens a window.
func New(kind, viewer string, log logrus.FieldLogger) (render.Presenter, error) {
	return choose(kind, viewer, terminal.IsTerminal(int(os.Stdout.Fd())), log)
}

func choose(kind, viewer string, tty bool, log logrus.FieldLogger) (render.Presenter, error) {
	if kind == "auto" {
		switch {
		case !tty:
			kind = "none"
		case viewer != "":
			kind = "command"
		default:
			kind = "window"
		}
	}
	switch kind {
	case "window":
		return Window{}, nil
	case "command":
		return NewCommand(viewer, log)
	case "none":
		return None{Log: log}, nil
	}
	return nil, errors.Errorf("unknown presenter %q", kind)
}

// None logs that a raster is ready and shows nothing.
type None struct {
	Log logrus.FieldLogger
}

func (n None) Present(title string, img image.Image) error {
	b := img.Bounds()
	n.Log.WithFields(logrus.Fields{"title": title, "width": b.Dx(), "height": b.Dy()}).Info("render complete")
	return nil
}

// Command hands the raster to an external viewer program.
type Command struct {
	// Argv is the viewer command. The raster's path is appended as
	// the last argument.
	Argv []string
	Log  logrus.FieldLogger
}

// NewCommand returns a Command running the shell-quoted command line
// viewer.
func NewCommand(viewer string, log logrus.FieldLogger) (*Command, error) {
	argv, err := shellquote.Split(viewer)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing viewer %q", viewer)
	}
	if len(argv) == 0 {
		return nil, errors.New("empty viewer command")
	}
	return &Command{Argv: argv, Log: log}, nil
}

// Present writes img to a temporary PNG and runs the viewer on it. The
// file is left behind, since many viewers return before reading it.
func (c *Command) Present(title string, img image.Image) error {
	f, err := os.CreateTemp("", "nmd-*.png")
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding raster")
	}
	if err := f.Close(); err != nil {
		return err
	}

	args := append(append([]string(nil), c.Argv[1:]...), f.Name())
	cmd := exec.Command(c.Argv[0], args...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	c.Log.WithFields(logrus.Fields{"title": title, "path": f.Name()}).Debugf("running %s", shellquote.Join(cmd.Args...))
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "viewer %s", c.Argv[0])
	}
	return nil
}
