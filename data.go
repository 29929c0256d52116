// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// CSV column names.
const (
	columnPercentile   = "percentile"
	columnAge          = "age"
	columnDeathRate    = "death_rate"
	columnSurvivalRate = "survival_rate"
)

// Row is one row of life expectancy data. The JSON tags set the field names
// used in the chart spec.
type Row struct {
	Percentile   string  `json:"percentile"`
	Age          float64 `json:"age"`
	DeathRate    float64 `json:"death_rate"`
	SurvivalRate float64 `json:"survival_rate"`
}

// LoadRows reads Rows from the named CSV file. The file must have a header
// containing at least the percentile, age, death_rate and survival_rate
// columns, in any order. Other columns are ignored.
func LoadRows(path string) (rows []Row, err error) {
	defer func() {
		if err != nil {
			err = &DataLoadError{path, err}
		}
	}()
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()
	rows, err = ReadRows(f)
	return
}

// ReadRows reads Rows in CSV format from r. See LoadRows.
func ReadRows(r io.Reader) (rows []Row, err error) {
	c := csv.NewReader(r)
	c.ReuseRecord = true
	var h []string
	if h, err = c.Read(); err != nil {
		if err == io.EOF {
			err = errors.New("missing CSV header")
		}
		return
	}
	var ix columnIndex
	if ix, err = newColumnIndex(h); err != nil {
		return
	}
	for {
		var rec []string
		if rec, err = c.Read(); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		var w Row
		if w, err = ix.row(rec); err != nil {
			line, _ := c.FieldPos(0)
			err = fmt.Errorf("line %d: %w", line, err)
			return
		}
		rows = append(rows, w)
	}
}

// columnIndex holds the position of each required column in a CSV record.
type columnIndex struct {
	percentile   int
	age          int
	deathRate    int
	survivalRate int
}

// newColumnIndex finds the required columns in the given header.
func newColumnIndex(header []string) (ix columnIndex, err error) {
	find := func(name string) int {
		return slices.IndexFunc(header, func(h string) bool {
			return strings.TrimSpace(h) == name
		})
	}
	ix = columnIndex{
		find(columnPercentile),
		find(columnAge),
		find(columnDeathRate),
		find(columnSurvivalRate),
	}
	var m []string
	for n, i := range map[string]int{
		columnPercentile:   ix.percentile,
		columnAge:          ix.age,
		columnDeathRate:    ix.deathRate,
		columnSurvivalRate: ix.survivalRate,
	} {
		if i < 0 {
			m = append(m, n)
		}
	}
	if len(m) > 0 {
		slices.Sort(m)
		err = fmt.Errorf("missing CSV column(s): %s", strings.Join(m, ", "))
	}
	return
}

// row parses a Row from a CSV record.
func (ix columnIndex) row(rec []string) (w Row, err error) {
	num := func(i int, name string) (f float64) {
		if err != nil {
			return
		}
		s := strings.TrimSpace(rec[i])
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			err = fmt.Errorf("column %s: %w", name, err)
			return
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			err = fmt.Errorf("column %s: non-finite value '%s'", name, s)
		}
		return
	}
	w = Row{
		Percentile:   strings.TrimSpace(rec[ix.percentile]),
		Age:          num(ix.age, columnAge),
		DeathRate:    num(ix.deathRate, columnDeathRate),
		SurvivalRate: num(ix.survivalRate, columnSurvivalRate),
	}
	return
}

// Aggregate maps each percentile label to the sum of age * death_rate over
// the Rows with that label. For death rates that sum to one within a group,
// this is the group's life expectancy.
type Aggregate map[string]float64

// NewAggregate groups rows by percentile and returns the Aggregate.
func NewAggregate(rows []Row) (a Aggregate) {
	type column struct {
		age       []float64
		deathRate []float64
	}
	g := make(map[string]*column)
	for _, r := range rows {
		c, ok := g[r.Percentile]
		if !ok {
			c = &column{}
			g[r.Percentile] = c
		}
		c.age = append(c.age, r.Age)
		c.deathRate = append(c.deathRate, r.DeathRate)
	}
	a = make(Aggregate, len(g))
	for p, c := range g {
		a[p] = floats.Dot(c.age, c.deathRate)
	}
	return
}

// Value returns the value for the given percentile label, or MissingKeyError
// if the label isn't in the Aggregate.
func (a Aggregate) Value(percentile string) (v float64, err error) {
	var ok bool
	if v, ok = a[percentile]; !ok {
		err = MissingKeyError{percentile}
	}
	return
}

// Difference returns the value for high minus the value for low.
func (a Aggregate) Difference(high, low string) (d float64, err error) {
	var h, l float64
	if h, err = a.Value(high); err != nil {
		return
	}
	if l, err = a.Value(low); err != nil {
		return
	}
	d = h - l
	return
}

// SurvivalRow is a Row with the survival rate as a percentage.
type SurvivalRow struct {
	Row
	PercentageOfSurvival float64 `json:"percentage_of_survival"`
}

// SelectPercentiles returns the Rows with a percentile label in allow, in their
// original order, as SurvivalRows.
func SelectPercentiles(rows []Row, allow []string) (sel []SurvivalRow) {
	var s []float64
	for _, r := range rows {
		if !slices.Contains(allow, r.Percentile) {
			continue
		}
		sel = append(sel, SurvivalRow{Row: r})
		s = append(s, r.SurvivalRate)
	}
	floats.Scale(100, s)
	for i := range sel {
		sel[i].PercentageOfSurvival = s[i]
	}
	return
}
