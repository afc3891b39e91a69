// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is a supported output format for saved figures.
type Extension string

const (
	// SVG is vector output, with text kept as text.
	SVG Extension = "svg"

	// PNG is raster output, rendered on a white background.
	PNG Extension = "png"
)

// Extensions is the whitelist of supported output formats.
var Extensions = []Extension{SVG, PNG}

// Valid reports whether the extension is one of [Extensions].
func (ex Extension) Valid() bool {
	return slices.Contains(Extensions, ex)
}

// ValidName reports whether the given project or save name is usable
// as a single path segment: non-empty and free of path separators.
func ValidName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`)
}

// Resolve computes the output path basePath/project/savename.ext,
// creating any missing directories so that the parent directory is
// guaranteed to exist for a subsequent write. Creating directories
// that already exist is not an error, so repeated calls with the same
// arguments are idempotent. project and savename must be plain names
// without path separators, and ext must be one of [Extensions].
// Directory creation failures are returned, never swallowed.
func Resolve(basePath, project, savename string, ext Extension) (string, error) {
	if !ext.Valid() {
		return "", fmt.Errorf("%w: %q is not one of %v", ErrInvalidExtension, ext, Extensions)
	}
	if !ValidName(project) {
		return "", fmt.Errorf("%w: project %q", ErrInvalidName, project)
	}
	if !ValidName(savename) {
		return "", fmt.Errorf("%w: savename %q", ErrInvalidName, savename)
	}
	dir := filepath.Join(basePath, project)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathCreation, err)
	}
	return filepath.Join(dir, savename+"."+string(ext)), nil
}

// ResolvePath is the manager method form of [Resolve], using the
// manager's BasePath, Project, and Ext.
func (fg *Figs) ResolvePath(savename string) (string, error) {
	return Resolve(fg.BasePath, fg.Project, savename, fg.Ext)
}
