// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile makes a placeholder file at the given path.
func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0666)
}

func TestResolve(t *testing.T) {
	base := t.TempDir()
	path, err := Resolve(base, "proj1", "plotA", SVG)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "proj1", "plotA.svg"), path)
	assert.DirExists(t, filepath.Join(base, "proj1"))
}

func TestResolveIdempotent(t *testing.T) {
	base := t.TempDir()
	p1, err := Resolve(base, "proj1", "plotA", PNG)
	require.NoError(t, err)
	p2, err := Resolve(base, "proj1", "plotA", PNG)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestResolveInvalidExtension(t *testing.T) {
	_, err := Resolve(t.TempDir(), "proj1", "plotA", "pdf")
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

func TestResolveInvalidNames(t *testing.T) {
	base := t.TempDir()
	for _, bad := range []string{"", "a/b", `a\b`} {
		_, err := Resolve(base, bad, "plotA", SVG)
		assert.ErrorIs(t, err, ErrInvalidName, "project %q", bad)
		_, err = Resolve(base, "proj1", bad, SVG)
		assert.ErrorIs(t, err, ErrInvalidName, "savename %q", bad)
	}
}

func TestResolvePathCreationError(t *testing.T) {
	base := t.TempDir()
	// a plain file where the project directory should go
	require.NoError(t, writeFile(filepath.Join(base, "proj1")))
	_, err := Resolve(base, "proj1", "plotA", SVG)
	assert.ErrorIs(t, err, ErrPathCreation)
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("plotA"))
	assert.True(t, ValidName("plot-a_1"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("a/b"))
	assert.False(t, ValidName(`a\b`))
}
