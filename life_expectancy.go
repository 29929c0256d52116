// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// LifeExpectancy makes a line chart of survival by age for selected income
// percentiles, with a subtitle comparing the life expectancy of two of them.
type LifeExpectancy struct {
	// Data is the CSV input file.
	Data string

	// To is the HTML output file.
	To string

	// Theme is the name of the registered theme to render with.
	Theme string

	// FontImport is a CSS import added to the HTML after it's written.
	FontImport string

	// Percentiles lists the percentile labels to chart.
	Percentiles []string

	// Low and High are the percentile labels compared in the subtitle.
	Low  string
	High string

	Width  int
	Height int
	Title  string

	// Subtitle is a format string for the subtitle, given the whole number of
	// years High lives longer than Low.
	Subtitle string

	Versions Versions
}

// resolvePaths makes relative Data and To paths relative to dir.
func (l *LifeExpectancy) resolvePaths(dir string) {
	for _, p := range []*string{&l.Data, &l.To} {
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// render runs the chart pipeline, using the given Registry to look up Theme.
func (l *LifeExpectancy) render(reg *Registry, log *zap.Logger) (err error) {
	var rr []Row
	if rr, err = LoadRows(l.Data); err != nil {
		return
	}
	log.Info("loaded data", zap.String("path", l.Data), zap.Int("rows", len(rr)))
	var y float64
	if y, err = NewAggregate(rr).Difference(l.High, l.Low); err != nil {
		return
	}
	log.Info("compared percentiles", zap.String("high", l.High),
		zap.String("low", l.Low), zap.Float64("years", y))
	s := SelectPercentiles(rr, l.Percentiles)
	c := l.chart(s, y)
	if err = reg.With(l.Theme, func() error {
		return c.SaveHTML(l.To, l.Versions, reg)
	}); err != nil {
		return
	}
	if err = AddImportToHTMLFile(l.To, l.FontImport); err != nil {
		return
	}
	log.Info("wrote chart", zap.String("path", l.To),
		zap.String("theme", l.Theme), zap.Int("rows", len(s)))
	return
}

// chart returns the Chart for the given rows and years added.
func (l *LifeExpectancy) chart(rows []SurvivalRow, years float64) *Chart {
	if rows == nil {
		rows = []SurvivalRow{}
	}
	return &Chart{
		Values: rows,
		Mark:   "line",
		Encoding: Encoding{
			X: &FieldDef{
				Field: "age",
				Type:  "quantitative",
				Title: "Age (years)",
			},
			Y: &FieldDef{
				Field: "percentage_of_survival",
				Type:  "quantitative",
				Title: "Percentage of the group surviving",
			},
			Color: &FieldDef{
				Field: "percentile",
				Type:  "nominal",
				Title: []string{"Percentile of", "income"},
			},
		},
		Width:  l.Width,
		Height: l.Height,
		Title: Title{
			Text:     l.Title,
			Subtitle: fmt.Sprintf(l.Subtitle, int(years)),
		},
	}
}
