// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

// A Configurer returns a vega-lite config to apply to charts.
type Configurer interface {
	Config() ThemeConfig
}

// ThemeConfig is the JSON object a theme contributes to a chart spec. Its
// Config field is placed under the chart's top-level "config" key.
type ThemeConfig struct {
	Config StyleConfig `json:"config"`
}

// StyleConfig is the vega-lite config object.
// https://vega.github.io/vega-lite/docs/config.html
type StyleConfig struct {
	Title  TitleConfig  `json:"title"`
	Range  RangeConfig  `json:"range"`
	Legend LegendConfig `json:"legend"`
	AxisX  AxisConfig   `json:"axisX"`
	AxisY  AxisConfig   `json:"axisY"`
}

// TitleConfig is the chart title style.
type TitleConfig struct {
	Anchor           string  `json:"anchor"`
	Dy               float64 `json:"dy"`
	Font             string  `json:"font"`
	FontSize         float64 `json:"fontSize"`
	Color            string  `json:"color"`
	SubtitlePadding  float64 `json:"subtitlePadding"`
	SubtitleFontSize float64 `json:"subtitleFontSize"`
	SubtitleColor    string  `json:"subtitleColor"`
}

// RangeConfig sets the default scale ranges.
type RangeConfig struct {
	Category  []string `json:"category"`
	Diverging []string `json:"diverging"`
}

// LegendConfig is the legend style.
type LegendConfig struct {
	Padding       float64 `json:"padding"`
	LabelFont     string  `json:"labelFont"`
	LabelFontSize float64 `json:"labelFontSize"`
	SymbolType    string  `json:"symbolType"`
	SymbolSize    float64 `json:"symbolSize"`
	Title         string  `json:"title"`
	TitleFont     string  `json:"titleFont"`
	TitleFontSize float64 `json:"titleFontSize"`
	Orient        string  `json:"orient"`
	FillColor     string  `json:"fillColor"`
}

// AxisConfig is an axis style. Fields are pointers so that an AxisConfig can
// be used as a partial override, where nil means not set.
type AxisConfig struct {
	Domain        *bool    `json:"domain,omitempty"`
	DomainColor   *string  `json:"domainColor,omitempty"`
	DomainWidth   *float64 `json:"domainWidth,omitempty"`
	Offset        *float64 `json:"offset,omitempty"`
	Grid          *bool    `json:"grid,omitempty"`
	LabelFont     *string  `json:"labelFont,omitempty"`
	LabelFontSize *float64 `json:"labelFontSize,omitempty"`
	LabelPadding  *float64 `json:"labelPadding,omitempty"`
	LabelAngle    *float64 `json:"labelAngle,omitempty"`
	TickColor     *string  `json:"tickColor,omitempty"`
	TickSize      *float64 `json:"tickSize,omitempty"`
	TickWidth     *float64 `json:"tickWidth,omitempty"`
	Title         *string  `json:"title,omitempty"`
	TitleFont     *string  `json:"titleFont,omitempty"`
	TitleFontSize *float64 `json:"titleFontSize,omitempty"`
	TitleColor    *string  `json:"titleColor,omitempty"`
	TitlePadding  *float64 `json:"titlePadding,omitempty"`
	TitleAlign    *string  `json:"titleAlign,omitempty"`
	TitleAngle    *float64 `json:"titleAngle,omitempty"`
	TitleY        *float64 `json:"titleY,omitempty"`
}

// merge returns a copy of the AxisConfig with each field that is set in o
// replacing the corresponding field.
func (a AxisConfig) merge(o AxisConfig) AxisConfig {
	set(&a.Domain, o.Domain)
	set(&a.DomainColor, o.DomainColor)
	set(&a.DomainWidth, o.DomainWidth)
	set(&a.Offset, o.Offset)
	set(&a.Grid, o.Grid)
	set(&a.LabelFont, o.LabelFont)
	set(&a.LabelFontSize, o.LabelFontSize)
	set(&a.LabelPadding, o.LabelPadding)
	set(&a.LabelAngle, o.LabelAngle)
	set(&a.TickColor, o.TickColor)
	set(&a.TickSize, o.TickSize)
	set(&a.TickWidth, o.TickWidth)
	set(&a.Title, o.Title)
	set(&a.TitleFont, o.TitleFont)
	set(&a.TitleFontSize, o.TitleFontSize)
	set(&a.TitleColor, o.TitleColor)
	set(&a.TitlePadding, o.TitlePadding)
	set(&a.TitleAlign, o.TitleAlign)
	set(&a.TitleAngle, o.TitleAngle)
	set(&a.TitleY, o.TitleY)
	return a
}

// set replaces *dst with a copy of *src, if src is not nil.
func set[T any](dst **T, src *T) {
	if src != nil {
		*dst = ptr(*src)
	}
}
