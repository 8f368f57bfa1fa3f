// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func TestChoose(t *testing.T) {
	log := quietLogger()
	for _, test := range []struct {
		kind, viewer string
		tty          bool
		want         interface{}
	}{
		{"auto", "", false, None{}},
		{"auto", "feh", false, None{}},
		{"auto", "feh", true, &Command{}},
		{"auto", "", true, Window{}},
		{"window", "", false, Window{}},
		{"command", "feh -F", false, &Command{}},
		{"none", "feh", true, None{}},
	} {
		p, err := choose(test.kind, test.viewer, test.tty, log)
		require.NoError(t, err)
		require.IsTypef(t, test.want, p, "%s %q tty=%v", test.kind, test.viewer, test.tty)
	}

	_, err := choose("hologram", "", true, log)
	require.Error(t, err)
	_, err = choose("command", "", true, log)
	require.Error(t, err)
}

func TestNewCommand(t *testing.T) {
	c, err := NewCommand(`feh --title "nmd plot" -Z`, quietLogger())
	require.NoError(t, err)
	require.Equal(t, []string{"feh", "--title", "nmd plot", "-Z"}, c.Argv)

	_, err = NewCommand(`feh "unterminated`, quietLogger())
	require.Error(t, err)
}

func TestCommandPresent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	c := &Command{Argv: []string{"true"}, Log: quietLogger()}
	require.NoError(t, c.Present("demo", img))
	files, err := filepath.Glob(filepath.Join(dir, "nmd-*.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f, err := os.Open(files[0])
	require.NoError(t, err)
	defer f.Close()
	got, _, err := image.Decode(f)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), got.Bounds())

	c = &Command{Argv: []string{"false"}, Log: quietLogger()}
	require.Error(t, c.Present("demo", img))
}

func TestNonePresent(t *testing.T) {
	require.NoError(t, None{Log: quietLogger()}.Present("demo", image.NewGray(image.Rect(0, 0, 1, 1))))
}
