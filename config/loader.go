/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	srfs "bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "sassresolve"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/sassresolve.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem srfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		if _, err := cfg.ResolutionMode(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
// A config file that fails to parse is reported and ignored.
func LoadOrDefault(filesystem srfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandLoadPaths resolves LoadPaths against rootDir and expands globs to
// the directories they match, preserving declaration order.
func (c *Config) ExpandLoadPaths(filesystem srfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, lp := range c.LoadPaths {
		expanded, err := expandDirPath(filesystem, rootDir, lp.Path)
		if err != nil {
			return nil, err
		}
		if len(expanded) == 0 {
			if lp.Required {
				return nil, fmt.Errorf("load path %s: %w", lp.Path, fs.ErrNotExist)
			}
			logger.Warn("load path %s matched no directories", lp.Path)
			continue
		}
		for _, dir := range expanded {
			if !seen[dir] {
				seen[dir] = true
				result = append(result, dir)
			}
		}
	}

	return result, nil
}

// expandDirPath expands a single load path which may contain globs.
func expandDirPath(filesystem srfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		if srfs.DirExists(filesystem, pattern) {
			return []string{pattern}, nil
		}
		return nil, nil
	}

	return expandGlob(filesystem, pattern, func(d fs.DirEntry) bool { return d.IsDir() })
}

// ExpandGlobs walks baseDir and returns the files matching any of patterns,
// which are relative to baseDir. Results are in walk (lexical) order.
func ExpandGlobs(filesystem srfs.FileSystem, baseDir string, patterns []string) ([]string, error) {
	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := relativeTo(baseDir, path)
		for _, pattern := range patterns {
			if matchDoublestar(pattern, relPath) {
				matches = append(matches, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem, keeping entries
// accepted by keep.
func expandGlob(filesystem srfs.FileSystem, pattern string, keep func(fs.DirEntry) bool) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}
	if !srfs.DirExists(filesystem, baseDir) {
		return nil, nil
	}

	relPattern := relativeTo(baseDir, pattern)

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == baseDir || !keep(d) {
			return nil
		}
		if matchDoublestar(relPattern, relativeTo(baseDir, path)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

func relativeTo(baseDir, path string) string {
	rel := strings.TrimPrefix(path, baseDir)
	return filepath.ToSlash(strings.TrimPrefix(rel, string(filepath.Separator)))
}

// matchDoublestar provides ** glob matching using the doublestar library.
func matchDoublestar(pattern, path string) bool {
	matched, _ := doublestar.Match(pattern, path)
	return matched
}
