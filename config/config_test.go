// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cf, err := Open()
	require.NoError(t, err)
	assert.Equal(t, "", cf.BasePath)
}

func TestSaveOpen(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	cf := &Config{BasePath: dir}
	require.NoError(t, cf.Save())

	fn, err := File()
	require.NoError(t, err)
	assert.FileExists(t, fn)

	got, err := Open()
	require.NoError(t, err)
	assert.Equal(t, dir, got.BasePath)
}

func TestBasePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.Equal(t, "", BasePath()) // nothing configured

	dir := t.TempDir()
	require.NoError(t, (&Config{BasePath: dir}).Save())
	assert.Equal(t, dir, BasePath())

	// configured path that does not exist falls back to the default
	gone := filepath.Join(dir, "gone")
	require.NoError(t, (&Config{BasePath: gone}).Save())
	assert.Equal(t, "", BasePath())
}

func TestDirFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "figs"), dir)
	fn, err := File()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), fn)
}
