// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads nmd's settings from NMD_* environment
// variables. Command-line flags may override them afterwards.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds everything nmd reads from the environment.
type Config struct {
	Output    string `env:"NMD_OUTPUT" envDefault:"input/output.png"`
	Width     int    `env:"NMD_WIDTH" envDefault:"640"`
	Height    int    `env:"NMD_HEIGHT" envDefault:"480"`
	DPI       int    `env:"NMD_DPI" envDefault:"100"`
	GlyphSize int    `env:"NMD_GLYPH_SIZE" envDefault:"256"`

	// Present is one of "auto", "window", "command", or "none".
	Present string `env:"NMD_PRESENT" envDefault:"auto"`
	// Viewer is the command line used by the "command" presenter.
	Viewer string `env:"NMD_VIEWER"`

	LogLevel string `env:"NMD_LOG_LEVEL" envDefault:"info"`
}

// Presenters lists the accepted values of Config.Present.
var Presenters = []string{"auto", "window", "command", "none"}

// Load reads a Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return c, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("bad canvas size %dx%d", c.Width, c.Height)
	}
	if c.DPI <= 0 {
		return errors.Errorf("bad dpi %d", c.DPI)
	}
	if c.GlyphSize < 0 {
		return errors.Errorf("bad glyph size %d", c.GlyphSize)
	}
	known := false
	for _, p := range Presenters {
		known = known || p == c.Present
	}
	if !known {
		return errors.Errorf("unknown presenter %q", c.Present)
	}
	if c.Present == "command" && c.Viewer == "" {
		return errors.New("command presenter needs a viewer")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// Level returns the configured log level. Validate must have accepted c.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		panic(errors.Wrap(err, "parsing log level failed"))
	}
	return level
}
