// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

//go:embed config.cue
var configCUE string

// Config is the plexchart configuration, loaded from CUE.
type Config struct {
	Theme          []Theme
	LifeExpectancy LifeExpectancy
}

// validate performs any validation on the Config that isn't possible to do
// with the schema in config.cue.
func (c *Config) validate() (err error) {
	if _, ok := c.theme(c.LifeExpectancy.Theme); !ok {
		err = UnknownThemeError{c.LifeExpectancy.Theme}
		return
	}
	// the subtitle must take exactly one integer
	if s := fmt.Sprintf(c.LifeExpectancy.Subtitle, 0); strings.Contains(s, "%!") {
		err = SubtitleFormatError{c.LifeExpectancy.Subtitle}
	}
	return
}

// theme returns the last Theme with the given name.
func (c *Config) theme(name string) (t Theme, ok bool) {
	for _, h := range c.Theme {
		if h.Name == name {
			t, ok = h, true
		}
	}
	return
}

// register registers each Theme in the given Registry, in order.
func (c *Config) register(r *Registry) {
	for _, t := range c.Theme {
		t.Register(r)
	}
}

// LoadConfig uses the CUE API to load and return the plexchart Config. The
// embedded schema in config.cue is unified with the CUE package in cuecfg.Dir,
// if there are any .cue files there. Otherwise, the schema defaults are used.
//
// The files in cuecfg.Dir must declare "package plexchart". They're built
// separately from the schema, so they can't refer to its definitions, like
// #IBM.
func LoadConfig(cuecfg *load.Config) (cfg *Config, err error) {
	// compile config schema
	ctx := cuecontext.New()
	s := ctx.CompileString(configCUE, cue.Filename("config.cue"))
	if s.Err() != nil {
		err = s.Err()
		return
	}
	v := s
	var ff []string
	if ff, err = filepath.Glob(filepath.Join(cuecfg.Dir, "*.cue")); err != nil {
		return
	}
	if len(ff) > 0 {
		// compile data value from the CUE app instance
		inst := load.Instances([]string{}, cuecfg)[0]
		if inst.Err != nil {
			err = inst.Err
			return
		}
		d := ctx.BuildInstance(inst)
		if d.Err() != nil {
			err = d.Err()
			return
		}
		// unify data and schema into CUE value
		v = d.Unify(s)
		if v.Err() != nil {
			err = v.Err()
			return
		}
	}
	cfg = &Config{}
	if err = v.Decode(cfg); err != nil {
		return
	}
	err = cfg.validate()
	return
}
