// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
)

// Frac is a pair of page-width fractions specifying a relative
// figure size.
type Frac struct {

	// Width is the figure width as a fraction of the page width.
	Width float32

	// Height is the figure height as a fraction of the page width.
	Height float32
}

// Presets are the named size presets. The first letter of the name is
// the height fraction and the second is the width fraction (e.g., QT is
// a quarter of the page high and a third wide).
var Presets = map[string]Frac{
	"QQ": {Width: 0.25, Height: 0.25},
	"QT": {Width: 1.0 / 3, Height: 0.25},
	"QH": {Width: 0.5, Height: 0.25},
	"FQ": {Width: 0.25, Height: 0.2},
}

// ApplySize sizes the current plot to the given width and height
// fractions of [Figs.PageWidth], returning the resulting absolute
// size in inches. Both fractions must be in (0, 1], and PageWidth
// must be positive. A new styled plot is started if there is no
// current plot. The plot is resized in pixels using its DPI.
func (fg *Figs) ApplySize(widthFrac, heightFrac float32) (width, height float32, err error) {
	if fg.PageWidth <= 0 {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidPageWidth, fg.PageWidth)
	}
	if widthFrac <= 0 || widthFrac > 1 {
		return 0, 0, fmt.Errorf("%w: width fraction %g", ErrInvalidFraction, widthFrac)
	}
	if heightFrac <= 0 || heightFrac > 1 {
		return 0, 0, fmt.Errorf("%w: height fraction %g", ErrInvalidFraction, heightFrac)
	}
	if fg.Plot == nil {
		fg.NewPlot()
	}
	fg.width = fg.PageWidth * widthFrac
	fg.height = fg.PageWidth * heightFrac
	fg.resize()
	fg.sizeSet = true
	return fg.width, fg.height, nil
}

// resize applies the current size in inches to the plot in pixels,
// using the plot's DPI.
func (fg *Figs) resize() {
	fg.Plot.Resize(image.Pt(int(math32.Round(fg.width*fg.Plot.DPI)), int(math32.Round(fg.height*fg.Plot.DPI))))
}

// Preset applies the named size preset from [Presets] to the
// current plot.
func (fg *Figs) Preset(name string) error {
	fr, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPreset, name)
	}
	_, _, err := fg.ApplySize(fr.Width, fr.Height)
	return err
}

// QQ sizes the current plot to a quarter of the page wide and a
// quarter high.
func (fg *Figs) QQ() error {
	return fg.Preset("QQ")
}

// QT sizes the current plot to a third of the page wide and a
// quarter high.
func (fg *Figs) QT() error {
	return fg.Preset("QT")
}

// QH sizes the current plot to half of the page wide and a
// quarter high.
func (fg *Figs) QH() error {
	return fg.Preset("QH")
}

// FQ sizes the current plot to a quarter of the page wide and a
// fifth high.
func (fg *Figs) FQ() error {
	return fg.Preset("FQ")
}

// XX sizes the current plot to custom width and height fractions
// of the page width.
func (fg *Figs) XX(widthFrac, heightFrac float32) error {
	_, _, err := fg.ApplySize(widthFrac, heightFrac)
	return err
}
