// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import "cogentcore.org/core/base/errors"

// Sentinel errors returned by figure sizing and saving operations.
// All are reported synchronously to the caller; nothing is retried.
var (
	// ErrInvalidFraction is returned when a size fraction is not in (0, 1].
	ErrInvalidFraction = errors.New("size fraction must be in (0, 1]")

	// ErrInvalidPageWidth is returned when the page width is not positive.
	ErrInvalidPageWidth = errors.New("page width must be greater than 0")

	// ErrInvalidExtension is returned when an output extension is not
	// one of the supported [Extensions].
	ErrInvalidExtension = errors.New("unsupported output extension")

	// ErrInvalidName is returned when a project or save name is empty
	// or contains path separators.
	ErrInvalidName = errors.New("name must be a non-empty single path segment")

	// ErrInvalidPreset is returned for a size preset name not in [Presets].
	ErrInvalidPreset = errors.New("no such size preset")

	// ErrPathCreation is returned when the output directory cannot be created.
	ErrPathCreation = errors.New("could not create output directory")

	// ErrFileExists is returned when saving would overwrite an existing
	// file and the overwrite policy is [NoOverwrite].
	ErrFileExists = errors.New("output file already exists")

	// ErrNoPlot is returned when an operation requires a current plot
	// and none has been set.
	ErrNoPlot = errors.New("no current plot")
)
