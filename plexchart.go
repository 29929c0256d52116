// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

// Package plexchart makes a themed vega-lite chart of life expectancy by
// income percentile, saved as a standalone HTML file.

package plexchart

import (
	"encoding/json"
	"io"

	"cuelang.org/go/cue/load"
	"go.uber.org/zap"
)

// Run runs a plexchart Command.
func Run(cmd Command) error {
	return cmd.run()
}

// A Command is a plexchart command.
type Command interface {
	run() error
}

// RunCommand registers the configured themes and renders the chart.
type RunCommand struct {
	// Log receives progress messages. If nil, nothing is logged.
	Log *zap.Logger

	// Registry is where themes are registered. If nil, a new Registry is used.
	Registry *Registry

	// Load configures where the CUE config is loaded from.
	Load load.Config
}

// run implements command
func (r *RunCommand) run() (err error) {
	var c *Config
	if c, err = LoadConfig(&r.Load); err != nil {
		return
	}
	g := r.Registry
	if g == nil {
		g = NewRegistry()
	}
	c.register(g)
	c.LifeExpectancy.resolvePaths(r.Load.Dir)
	l := r.Log
	if l == nil {
		l = zap.NewNop()
	}
	err = c.LifeExpectancy.render(g, l)
	return
}

// VetCommand loads and checks the CUE config.
type VetCommand struct {
	// Load configures where the CUE config is loaded from.
	Load load.Config
}

// run implements command
func (v *VetCommand) run() (err error) {
	_, err = LoadConfig(&v.Load)
	return
}

// ThemeCommand writes the rendered config of a theme as indented JSON.
type ThemeCommand struct {
	// Name is the theme name. If empty, the theme configured for the chart is
	// used.
	Name string

	// Out is where the JSON is written.
	Out io.Writer

	// Load configures where the CUE config is loaded from.
	Load load.Config
}

// run implements command
func (t *ThemeCommand) run() (err error) {
	var c *Config
	if c, err = LoadConfig(&t.Load); err != nil {
		return
	}
	n := t.Name
	if n == "" {
		n = c.LifeExpectancy.Theme
	}
	h, ok := c.theme(n)
	if !ok {
		err = UnknownThemeError{n}
		return
	}
	e := json.NewEncoder(t.Out)
	e.SetIndent("", "  ")
	err = e.Encode(h.Config())
	return
}
