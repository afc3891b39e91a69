// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command figs manages the configuration for the figs figure manager.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/figs/config"
	"github.com/mitchellh/go-homedir"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the figs cli.
type Config struct {

	// Dir is a directory to set as the default base path directly,
	// bypassing the interactive prompt of the init command.
	Dir string `cmd:"init" flag:"d,dir"`
}

func main() {
	opts := cli.DefaultOptions("figs", "Figs manages standardized sizing, styling, and saving of plot figures.")
	cli.Run(opts, &Config{}, Init, Show)
}

// Init configures the default directory where figures are saved,
// prompting interactively unless a directory is given with the
// dir flag.
func Init(c *Config) error { //types:add
	cur, err := config.Open()
	if err != nil {
		return err
	}
	if c.Dir != "" {
		dir, err := homedir.Expand(c.Dir)
		if err != nil {
			return err
		}
		return setBasePath(cur, dir)
	}
	fn, err := config.File()
	if err != nil {
		return err
	}
	fmt.Println("Figs configuration setup")
	if cur.BasePath != "" {
		fmt.Println("Current base path:", cur.BasePath)
	} else {
		fmt.Println("No base path configured (using current working directory)")
	}
	fmt.Println("Configuration will be saved to:", fn)
	fmt.Println()
	fmt.Println("Where should figures be saved by default?")
	fmt.Println("  [1] Create a new Figs directory (~/Figs)")
	fmt.Println("  [2] Specify a custom directory")
	fmt.Println("  [3] Use the current working directory (default behavior)")
	fmt.Println("  [4] Cancel")

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Select [1-4]: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "1":
			home, err := homedir.Dir()
			if err != nil {
				return err
			}
			return setBasePath(cur, filepath.Join(home, "Figs"))
		case "2":
			fmt.Print("Enter full path (~ for home directory): ")
			pline, err := in.ReadString('\n')
			if err != nil {
				return err
			}
			dir, err := homedir.Expand(strings.TrimSpace(pline))
			if err != nil {
				return err
			}
			return setBasePath(cur, dir)
		case "3":
			cur.BasePath = ""
			if err := cur.Save(); err != nil {
				return err
			}
			fmt.Println("Configuration saved; figures will be saved to the current working directory.")
			return nil
		case "4":
			fmt.Println("Configuration cancelled.")
			return nil
		default:
			fmt.Println("Invalid choice; please select 1, 2, 3, or 4.")
		}
	}
}

// setBasePath creates the given directory if needed, saves it as the
// default base path, and reports the result.
func setBasePath(cur *config.Config, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	cur.BasePath = dir
	if err := cur.Save(); err != nil {
		return err
	}
	fmt.Println("Configuration saved; figures will be saved to:", dir)
	fmt.Println("You can always override this per-project with SetBasePath.")
	return nil
}

// Show prints the current figs configuration.
func Show(c *Config) error { //types:add
	fn, err := config.File()
	if err != nil {
		return err
	}
	cur, err := config.Open()
	if err != nil {
		return err
	}
	fmt.Println("Config file:", fn)
	if cur.BasePath == "" {
		fmt.Println("Base path: not set (using current working directory)")
		return nil
	}
	fmt.Println("Base path:", cur.BasePath)
	if info, err := os.Stat(cur.BasePath); err != nil || !info.IsDir() {
		fmt.Println("  WARNING: directory does not exist")
	}
	return nil
}
