// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/colors"
)

// Save renders the current plot and writes it to
// BasePath/Project/savename.Ext, returning the path written.
// If savename already ends in a supported extension, that format is
// used instead of [Figs.Ext]; an unsupported extension is an error.
// If no size preset has been applied, [Figs.QQ] is applied first.
// PNG output is rendered at [figstyle.Style.SaveDPI] on a white
// background; SVG output is vector. Errors from the underlying
// writers are returned to the caller unmodified beyond wrapping.
func (fg *Figs) Save(savename string) (string, error) {
	if fg.Plot == nil {
		return "", ErrNoPlot
	}
	ext := fg.Ext
	if e := filepath.Ext(savename); e != "" {
		ev := Extension(strings.TrimPrefix(e, "."))
		if !ev.Valid() {
			return "", fmt.Errorf("%w: %q is not one of %v", ErrInvalidExtension, ev, Extensions)
		}
		ext = ev
		savename = strings.TrimSuffix(savename, e)
	}
	if !fg.sizeSet {
		if err := fg.QQ(); err != nil {
			return "", err
		}
	}
	path, err := Resolve(fg.BasePath, fg.Project, savename, ext)
	if err != nil {
		return "", err
	}
	if fg.Overwrite == NoOverwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}
	switch ext {
	case SVG:
		if err := fg.Plot.SVGToFile(path); err != nil {
			return "", fmt.Errorf("figs.Save: %w", err)
		}
	case PNG:
		dpi := fg.Plot.DPI
		if fg.Style != nil && fg.Style.SaveDPI > 0 {
			fg.Plot.DPI = fg.Style.SaveDPI
			fg.resize()
		}
		fg.Plot.Background = colors.Uniform(colors.White)
		fg.Plot.Draw()
		err := imagex.Save(fg.Plot.Pixels, path)
		if fg.Plot.DPI != dpi { // restore the display resolution
			fg.Plot.DPI = dpi
			fg.resize()
		}
		if err != nil {
			return "", fmt.Errorf("figs.Save: %w", err)
		}
	}
	logx.PrintlnInfo("saved figure to " + path)
	return path, nil
}
