// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config manages the persisted default base path for figure
// output, stored in a small TOML file in the platform user config
// directory. It is written by the figs init command and read once
// when a figure manager is constructed; the core library never
// prompts interactively.
package config

import (
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
)

// file is the name of the config file within [Dir].
const file = "config.toml"

// Config holds the persisted settings.
type Config struct {

	// BasePath is the default base directory for figure output.
	// Empty means use the current working directory.
	BasePath string
}

// Dir returns the platform-appropriate config directory for figs
// (e.g., ~/.config/figs on Linux, ~/Library/Application Support/figs
// on macOS, %AppData%\figs on Windows).
func Dir() (string, error) {
	d, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "figs"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, file), nil
}

// Open reads the saved config. A missing config file is not an error
// and returns a zero [Config].
func Open() (*Config, error) {
	fn, err := File()
	if err != nil {
		return nil, err
	}
	cf := &Config{}
	if _, err := os.Stat(fn); err != nil {
		return cf, nil
	}
	if err := tomlx.Open(cf, fn); err != nil {
		return nil, err
	}
	return cf, nil
}

// Save writes the config file, creating the config directory
// if needed.
func (cf *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return tomlx.Save(cf, filepath.Join(dir, file))
}

// BasePath returns the configured default base path, or the empty
// string if none is configured or the configured directory no longer
// exists on disk. It never returns an error, so a broken config file
// only reduces the caller to the default behavior.
func BasePath() string {
	cf, err := Open()
	if err != nil {
		logx.PrintlnWarn("figs: could not read config:", err)
		return ""
	}
	if cf.BasePath == "" {
		return ""
	}
	if info, err := os.Stat(cf.BasePath); err != nil || !info.IsDir() {
		logx.PrintlnWarn("figs: configured base path does not exist:", cf.BasePath)
		return ""
	}
	return cf.BasePath
}
