// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figstyle

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/tomlx"
	"gopkg.in/yaml.v3"
)

// Open reads a style from the given TOML or YAML file, selected by
// the file extension. Fields not present in the file keep their
// default values.
func Open(filename string) (*Style, error) {
	st := NewStyle()
	switch filepath.Ext(filename) {
	case ".toml":
		if err := tomlx.Open(st, filename); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, st); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("figstyle.Open: unsupported style file format %q", filepath.Ext(filename))
	}
	return st, nil
}

// Save writes the style to the given TOML or YAML file, selected by
// the file extension.
func (st *Style) Save(filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Save(st, filename)
	case ".yaml", ".yml":
		b, err := yaml.Marshal(st)
		if err != nil {
			return err
		}
		return os.WriteFile(filename, b, 0666)
	default:
		return fmt.Errorf("figstyle.Save: unsupported style file format %q", filepath.Ext(filename))
	}
}
