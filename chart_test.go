// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testVersions are the library versions the chart is published with.
var testVersions = Versions{VegaLite: "4.8.1", Vega: "5", VegaEmbed: "6"}

// testChart returns a small Chart.
func testChart() *Chart {
	return &Chart{
		Values: []Row{{Percentile: "0-5%", Age: 40, SurvivalRate: 0.9}},
		Mark:   "line",
		Encoding: Encoding{
			X: &FieldDef{Field: "age", Type: "quantitative", Title: "Age"},
			Color: &FieldDef{Field: "percentile", Type: "nominal",
				Title: []string{"a", "b"}},
		},
		Width:  600,
		Height: 400,
		Title:  Title{Text: "t", Subtitle: "s"},
	}
}

// decodeSpec returns the Chart's spec as a map.
func decodeSpec(t *testing.T, c *Chart, reg *Registry) (m map[string]any) {
	t.Helper()
	b, err := c.Spec(testVersions, reg)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &m))
	return
}

func TestChartSpec(t *testing.T) {
	t.Parallel()

	m := decodeSpec(t, testChart(), nil)
	assert.Equal(t, "https://vega.github.io/schema/vega-lite/v4.8.1.json",
		m["$schema"])
	assert.Equal(t, "line", m["mark"])
	assert.EqualValues(t, 600, m["width"])
	assert.EqualValues(t, 400, m["height"])
	assert.NotContains(t, m, "config")

	e := m["encoding"].(map[string]any)
	assert.NotContains(t, e, "y")
	assert.Equal(t, []any{"a", "b"}, e["color"].(map[string]any)["title"])
	v := m["data"].(map[string]any)["values"].([]any)
	require.Len(t, v, 1)
	assert.Equal(t, "0-5%", v[0].(map[string]any)["percentile"])
}

func TestChartSpecUsesActiveThemeOnlyInScope(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	testTheme().Register(r)
	c := testChart()
	assert.NotContains(t, decodeSpec(t, c, r), "config")
	require.NoError(t, r.With("ibm", func() error {
		m := decodeSpec(t, c, r)
		require.Contains(t, m, "config")
		g := m["config"].(map[string]any)
		assert.Contains(t, g, "axisX")
		assert.Contains(t, g, "range")
		return nil
	}))
	assert.NotContains(t, decodeSpec(t, c, r), "config")
}

func TestChartWriteHTML(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, testChart().WriteHTML(&b, testVersions, nil))
	h := b.String()
	assert.Contains(t, h, "https://cdn.jsdelivr.net/npm/vega@5")
	assert.Contains(t, h, "https://cdn.jsdelivr.net/npm/vega-lite@4.8.1")
	assert.Contains(t, h, "https://cdn.jsdelivr.net/npm/vega-embed@6")
	assert.Contains(t, h, `"$schema":"https://vega.github.io/schema/vega-lite/v4.8.1.json"`)
	assert.Equal(t, 1, strings.Count(h, styleTag))
	assert.Less(t, strings.Index(h, styleTag), strings.Index(h, "var spec"))
}

func TestChartSaveHTMLBadPath(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "missing", "chart.html")
	err := testChart().SaveHTML(p, testVersions, nil)
	var f *FileIOError
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "write", f.Op)
	assert.Equal(t, p, f.Path)
}

func TestChartSaveHTMLUnencodableKeepsFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, os.WriteFile(p, []byte("old"), 0o644))
	c := testChart()
	c.Values = []Row{{Percentile: "0-5%", SurvivalRate: math.NaN()}}
	err := c.SaveHTML(p, testVersions, nil)
	require.Error(t, err)
	var f *FileIOError
	assert.False(t, errors.As(err, &f), "encoding error reported as I/O error")
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))
}
