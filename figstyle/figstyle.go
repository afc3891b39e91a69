// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figstyle provides an explicit style configuration for
// publication figures, applied to a [plot.Plot] with a single call
// instead of through implicit global state, so that initialization
// order is explicit and testable.
package figstyle

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/plot"
)

// Style is the set of styling parameters applied to each figure:
// font family and sizes, axis and tick line widths, the color cycle,
// and rendering resolution.
type Style struct {

	// Family is the font family for all plot text. The empty string
	// uses the standard default font.
	Family string

	// FontSize is the font size for the title and axis labels, in points.
	FontSize float32 `default:"12"`

	// TickFontSize is the font size for axis tick labels, in points.
	TickFontSize float32 `default:"12"`

	// LegendFontSize is the font size for legend entries, in points.
	LegendFontSize float32 `default:"11"`

	// LineWidth is the axis line width, in points.
	LineWidth float32 `default:"1.5"`

	// TickWidth is the width of major tick lines, in points.
	TickWidth float32 `default:"1"`

	// TickLength is the length of major tick lines, in dp.
	TickLength float32 `default:"4"`

	// TextColor is the color for all plot text and axis lines.
	TextColor color.RGBA

	// Palette is the color cycle used for successive plot elements.
	Palette []color.RGBA

	// Colors are named accent colors for consistent styling
	// across figures.
	Colors map[string]color.RGBA

	// DPI is the rendering resolution in dots per inch.
	DPI float32 `default:"150"`

	// SaveDPI is the rendering resolution used when saving
	// raster formats.
	SaveDPI float32 `default:"300"`
}

// NewStyle returns a new [Style] with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.FontSize = 12
	st.TickFontSize = 12
	st.LegendFontSize = 11
	st.LineWidth = 1.5
	st.TickWidth = 1
	st.TickLength = 4
	st.TextColor = colors.Black
	st.Palette = []color.RGBA{
		colors.Black,
		colors.Blue,
		colors.Cyan,
		colors.Red,
		colors.Magenta,
		colors.Green,
		colors.Yellow,
	}
	st.Colors = map[string]color.RGBA{
		"primary":   errors.Log1(colors.FromHex("#2E86AB")),
		"secondary": errors.Log1(colors.FromHex("#A23B72")),
		"accent":    errors.Log1(colors.FromHex("#F18F01")),
		"neutral":   errors.Log1(colors.FromHex("#C73E1D")),
		"gray":      errors.Log1(colors.FromHex("#6B7280")),
		"lightgray": errors.Log1(colors.FromHex("#D1D5DB")),
		"black":     errors.Log1(colors.FromHex("#1F2937")),
	}
	st.DPI = 150
	st.SaveDPI = 300
}

// ApplyPlot applies the style to the given plot, setting its DPI and
// styling its title, axes, ticks, and legend. It also sets
// [plot.DefaultFontFamily] so that text elements added later default
// to the configured family.
func (st *Style) ApplyPlot(plt *plot.Plot) {
	if st.Family != "" {
		plot.DefaultFontFamily = st.Family
	}
	plt.DPI = st.DPI
	st.text(&plt.Title.Style, st.FontSize)
	st.text(&plt.X.Label.Style, st.FontSize)
	st.text(&plt.Y.Label.Style, st.FontSize)
	st.text(&plt.X.TickText.Style, st.TickFontSize)
	st.text(&plt.Y.TickText.Style, st.TickFontSize)
	st.text(&plt.Legend.TextStyle, st.LegendFontSize)
	st.axis(&plt.X)
	st.axis(&plt.Y)
}

// text applies the font settings to one text style at the given size.
func (st *Style) text(ts *plot.TextStyle, size float32) {
	ts.Size.Pt(size)
	ts.Color = colors.Uniform(st.TextColor)
	if st.Family != "" {
		ts.Family = st.Family
	}
}

// axis applies the line and tick settings to one axis.
func (st *Style) axis(ax *plot.Axis) {
	ax.Line.Width.Pt(st.LineWidth)
	ax.Line.Color = colors.Uniform(st.TextColor)
	ax.TickLine.Width.Pt(st.TickWidth)
	ax.TickLine.Color = colors.Uniform(st.TextColor)
	ax.TickLength.Dp(st.TickLength)
}

// Color returns the i-th color in the palette, cycling around at the
// end, for styling successive plot elements.
func (st *Style) Color(i int) color.RGBA {
	if len(st.Palette) == 0 {
		return colors.Black
	}
	return st.Palette[i%len(st.Palette)]
}

// NamedColor returns the named accent color from [Style.Colors],
// or the text color if the name is not present.
func (st *Style) NamedColor(name string) color.RGBA {
	if c, ok := st.Colors[name]; ok {
		return c
	}
	return st.TextColor
}
