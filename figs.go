// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figs manages publication figures made with [plot.Plot]:
// it applies consistent styling, sizes figures using named presets
// derived from page-width fractions, and saves rendered output under
// a standard BasePath/Project directory layout.
package figs

import (
	"os"

	"cogentcore.org/core/plot"
	"cogentcore.org/figs/config"
	"cogentcore.org/figs/figstyle"
)

// DefaultPageWidth is the default usable page width in inches,
// which size presets multiply into absolute figure dimensions.
const DefaultPageWidth = 7

// Figs manages the figures for one project. It holds the current plot,
// applies size presets to it, and saves rendered output files under
// BasePath/Project. Two managers targeting the same directory are safe:
// directory creation is idempotent.
type Figs struct {

	// Project is the directory name within BasePath where figures
	// for this project are saved. It must be a plain name without
	// path separators.
	Project string

	// BasePath is the base directory for figure output. The priority
	// is: [Figs.SetBasePath] > the configured default from
	// [config.BasePath] > the current working directory.
	BasePath string

	// Ext is the output format used when a save name does not already
	// carry an extension. Defaults to [SVG].
	Ext Extension

	// PageWidth is the usable page width in inches. The one-inch margin
	// convention is applied here when choosing the value (e.g., a letter
	// page is 8.5in, so 6.5in remains after margins); sizing operations
	// only multiply by it.
	PageWidth float32

	// Style is applied to each new plot made with [Figs.NewPlot].
	Style *figstyle.Style

	// Overwrite governs what happens when the destination file
	// already exists.
	Overwrite OverwritePolicy

	// Plot is the current plot that size presets and [Figs.Save]
	// operate on.
	Plot *plot.Plot

	// width and height are the current figure size in inches,
	// valid after a size preset has been applied.
	width, height float32

	// sizeSet is whether a size preset has been applied to the
	// current plot.
	sizeSet bool
}

// New returns a new [Figs] manager for the given project name.
// The base path is initialized from the configured default
// ([config.BasePath]) if set, and otherwise from the current working
// directory; use [Figs.SetBasePath] to override it.
func New(project string) *Figs {
	fg := &Figs{
		Project:   project,
		Ext:       SVG,
		PageWidth: DefaultPageWidth,
		Style:     figstyle.NewStyle(),
	}
	if bp := config.BasePath(); bp != "" {
		fg.BasePath = bp
	} else if wd, err := os.Getwd(); err == nil {
		fg.BasePath = wd
	}
	return fg
}

// NewPlot starts a new plot with the manager's [figstyle.Style] applied,
// making it the current plot, and returns it.
func (fg *Figs) NewPlot() *plot.Plot {
	plt := plot.New()
	if fg.Style != nil {
		fg.Style.ApplyPlot(plt)
	}
	fg.Plot = plt
	fg.sizeSet = false
	return plt
}

// SetBasePath sets the base directory for figure output.
func (fg *Figs) SetBasePath(base string) *Figs {
	fg.BasePath = base
	return fg
}

// SetExt sets the default output format.
func (fg *Figs) SetExt(ext Extension) *Figs {
	fg.Ext = ext
	return fg
}

// SetPageWidth sets the usable page width in inches.
func (fg *Figs) SetPageWidth(width float32) *Figs {
	fg.PageWidth = width
	return fg
}

// SetStyle sets the style applied to new plots.
func (fg *Figs) SetStyle(st *figstyle.Style) *Figs {
	fg.Style = st
	return fg
}

// SetOverwrite sets the overwrite policy for saving.
func (fg *Figs) SetOverwrite(ow OverwritePolicy) *Figs {
	fg.Overwrite = ow
	return fg
}

// SetPlot sets the current plot that presets and [Figs.Save] operate on.
func (fg *Figs) SetPlot(plt *plot.Plot) *Figs {
	fg.Plot = plt
	fg.sizeSet = false
	return fg
}

// OverwritePolicy determines what saving does when the destination
// file already exists.
type OverwritePolicy int32

const (
	// Overwrite replaces an existing destination file. This is the
	// default, matching typical plotting-library save behavior.
	Overwrite OverwritePolicy = iota

	// NoOverwrite returns [ErrFileExists] instead of replacing an
	// existing destination file.
	NoOverwrite
)
