// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package plexchart

// Font sets the typeface and the pre-scaled sizes used by a Theme.
type Font struct {
	Family  string
	Small   float64
	Regular float64
	Large   float64
}

// Colors sets the non-palette colors used by a Theme.
type Colors struct {
	Background string
	DarkText   string
	LightText  string
	Grid       string
}

// Palettes lists the color ranges used by a Theme. Main is categorical, and
// is assigned to series in order. Sequential is used for continuous and
// diverging scales.
type Palettes struct {
	Main       []string
	Sequential []string
}

// Theme is a named bundle of chart styles, rendered to a vega-lite config by
// the Config method. A Theme is not modified after construction.
type Theme struct {
	Name     string
	Font     Font
	Colors   Colors
	Palettes Palettes
}

// Config implements Configurer.
func (t Theme) Config() ThemeConfig {
	return ThemeConfig{
		Config: StyleConfig{
			Title:  t.title(),
			Range:  t.colorRange(),
			Legend: t.legend(),
			AxisX: t.axis().merge(AxisConfig{
				TitleColor:   ptr(t.Colors.DarkText),
				TitlePadding: ptr(5.0),
				Title:        ptr("X Axis Title (units)"),
			}),
			AxisY: t.axis().merge(AxisConfig{
				Title:        ptr("Y Axis Title (units)"),
				TitlePadding: ptr(0.0),
				TitleAlign:   ptr("left"),
				TitleAngle:   ptr(0.0),
				TitleY:       ptr(-20.0),
			}),
		},
	}
}

// Register registers the Theme in the given Registry under its Name.
func (t Theme) Register(r *Registry) {
	r.Register(t.Name, t)
}

// title returns the global title style.
func (t Theme) title() TitleConfig {
	return TitleConfig{
		Anchor:           "start",
		Dy:               -30,
		Font:             t.Font.Family,
		FontSize:         t.Font.Large,
		Color:            t.Colors.DarkText,
		SubtitlePadding:  -20,
		SubtitleFontSize: t.Font.Small,
		SubtitleColor:    t.Colors.DarkText,
	}
}

// colorRange returns the scale ranges, copied so callers can't alias the
// Theme's palettes.
func (t Theme) colorRange() RangeConfig {
	return RangeConfig{
		Category:  append([]string(nil), t.Palettes.Main...),
		Diverging: append([]string(nil), t.Palettes.Sequential...),
	}
}

// legend returns the legend style. The title is empty, so charts set their own.
func (t Theme) legend() LegendConfig {
	return LegendConfig{
		Padding:       5,
		LabelFont:     t.Font.Family,
		LabelFontSize: t.Font.Regular,
		SymbolType:    "circle",
		SymbolSize:    60,
		Title:         "",
		TitleFont:     t.Font.Family,
		TitleFontSize: t.Font.Regular,
		Orient:        "top-right",
		FillColor:     t.Colors.Background,
	}
}

// axis returns the style shared by both axes.
func (t Theme) axis() AxisConfig {
	return AxisConfig{
		Domain:        ptr(true),
		DomainColor:   ptr(t.Colors.Background),
		DomainWidth:   ptr(2.0),
		Offset:        ptr(5.0),
		Grid:          ptr(true),
		LabelFont:     ptr(t.Font.Family),
		LabelFontSize: ptr(t.Font.Small),
		LabelPadding:  ptr(10.0),
		LabelAngle:    ptr(0.0),
		TickColor:     ptr(t.Colors.DarkText),
		TickSize:      ptr(7.0),
		TickWidth:     ptr(2.0),
		TitleFont:     ptr(t.Font.Family),
		TitleFontSize: ptr(t.Font.Regular),
	}
}

// ptr returns a pointer to a copy of v.
func ptr[T any](v T) *T {
	return &v
}
