/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project merges CLI settings with the project config.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/sassresolve/config"
	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/importer"
)

// Project is the effective configuration for one command run.
type Project struct {
	FS        fs.FileSystem
	Root      string
	Config    *config.Config
	LoadPaths []string
	Mode      importer.Mode
}

// Load reads the project config under the viper "root" setting and applies
// flag and environment overrides. Flags win over the config file, and
// --load-path entries are searched after configured load paths.
func Load(v *viper.Viper, filesystem fs.FileSystem) (*Project, error) {
	root := v.GetString("root")
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	loadPaths, err := cfg.ExpandLoadPaths(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error expanding load paths: %w", err)
	}
	for _, lp := range v.GetStringSlice("load-path") {
		abs, err := filepath.Abs(lp)
		if err != nil {
			return nil, fmt.Errorf("invalid load path %s: %w", lp, err)
		}
		loadPaths = append(loadPaths, abs)
	}

	modeName := cfg.Mode
	if m := v.GetString("mode"); m != "" {
		modeName = m
	}
	mode, err := importer.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	return &Project{
		FS:        filesystem,
		Root:      root,
		Config:    cfg,
		LoadPaths: loadPaths,
		Mode:      mode,
	}, nil
}
