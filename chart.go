// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
)

// chartTemplate is the template for standalone vega-lite HTML files.
//
//go:embed chart.html.tmpl
var chartTemplate string

// chartHTML is the parsed chartTemplate.
var chartHTML = template.Must(template.New("chart").Parse(chartTemplate))

// Versions sets the vega library versions referenced by the HTML output.
type Versions struct {
	VegaLite  string
	Vega      string
	VegaEmbed string
}

// schemaURL returns the URL of the vega-lite JSON schema.
func (v Versions) schemaURL() string {
	return fmt.Sprintf("https://vega.github.io/schema/vega-lite/v%s.json",
		v.VegaLite)
}

// Chart is a single view vega-lite chart with inline data.
type Chart struct {
	// Values is the chart data, which must marshal to a JSON array of objects.
	Values any

	// Mark is the geometry, e.g. "line".
	Mark string

	Encoding Encoding
	Width    int
	Height   int
	Title    Title
}

// Encoding maps data fields to visual channels.
type Encoding struct {
	X     *FieldDef `json:"x,omitempty"`
	Y     *FieldDef `json:"y,omitempty"`
	Color *FieldDef `json:"color,omitempty"`
}

// FieldDef is the definition of a field for one encoding channel.
type FieldDef struct {
	Field string `json:"field"`
	Type  string `json:"type"`

	// Title is a string, or a []string for a multi-line title.
	Title any `json:"title,omitempty"`
}

// Title is the chart title.
type Title struct {
	Text     string `json:"text"`
	Subtitle string `json:"subtitle,omitempty"`
}

// chartSpec is the top-level vega-lite spec.
type chartSpec struct {
	Schema   string       `json:"$schema"`
	Config   *StyleConfig `json:"config,omitempty"`
	Data     chartData    `json:"data"`
	Mark     string       `json:"mark"`
	Encoding Encoding     `json:"encoding"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Title    Title        `json:"title"`
}

// chartData is inline data for a chartSpec.
type chartData struct {
	Values any `json:"values"`
}

// Spec returns the vega-lite JSON spec for the Chart. If reg is not nil and
// has an active theme, its config is included.
func (c *Chart) Spec(v Versions, reg *Registry) (spec []byte, err error) {
	s := chartSpec{
		Schema:   v.schemaURL(),
		Data:     chartData{c.Values},
		Mark:     c.Mark,
		Encoding: c.Encoding,
		Width:    c.Width,
		Height:   c.Height,
		Title:    c.Title,
	}
	if reg != nil {
		if t, ok := reg.Active(); ok {
			s.Config = &t.Config
		}
	}
	spec, err = json.Marshal(s)
	return
}

// WriteHTML writes the Chart to w as a standalone HTML file, which loads the
// vega libraries with the given Versions.
func (c *Chart) WriteHTML(w io.Writer, v Versions, reg *Registry) (err error) {
	type tdata struct {
		Title    string
		Versions Versions
		Spec     template.JS
	}
	var b []byte
	if b, err = c.Spec(v, reg); err != nil {
		return
	}
	err = chartHTML.Execute(w, tdata{c.Title.Text, v, template.JS(b)})
	return
}

// SaveHTML writes the Chart to the named file with WriteHTML. The HTML is
// rendered before the file is created or truncated, so a Chart that can't be
// rendered leaves any existing file as is, and its error is returned unwrapped.
func (c *Chart) SaveHTML(path string, v Versions, reg *Registry) (err error) {
	var b bytes.Buffer
	if err = c.WriteHTML(&b, v, reg); err != nil {
		return
	}
	if err = os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		err = &FileIOError{"write", path, err}
	}
	return
}
