/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for sassresolve.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/sassresolve/importer"
)

// DefaultInclude selects every stylesheet in a tree.
const DefaultInclude = "**/*.{sass,scss,css}"

// Config represents the project configuration.
type Config struct {
	// LoadPaths are searched, in order, for imports that are not relative
	// to the importing file.
	LoadPaths []LoadPath `yaml:"loadPaths" json:"loadPaths"`

	// Mode is the default resolution mode: "import" (default) or "use".
	Mode string `yaml:"mode" json:"mode"`

	// CacheSize bounds the import cache. Zero uses the cache default.
	CacheSize int `yaml:"cacheSize" json:"cacheSize"`

	// Include lists the globs the conflicts scan considers.
	Include []string `yaml:"include" json:"include"`
}

// LoadPath is a load path entry.
// It can be written as a plain string or as an object.
type LoadPath struct {
	// Path is a directory, or a doublestar glob matching directories.
	Path string `yaml:"path" json:"path"`

	// Required makes a missing directory (or a glob with no matches) an error
	// instead of a warning.
	Required bool `yaml:"required" json:"required"`
}

// UnmarshalYAML handles both string and object forms for LoadPath.
func (l *LoadPath) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Path = node.Value
		return nil
	}

	type rawLoadPath LoadPath
	return node.Decode((*rawLoadPath)(l))
}

// UnmarshalJSON handles both string and object forms for LoadPath.
func (l *LoadPath) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Path = s
		return nil
	}

	type rawLoadPath LoadPath
	return json.Unmarshal(data, (*rawLoadPath)(l))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Include: []string{DefaultInclude},
	}
}

// ResolutionMode returns the parsed Mode field.
func (c *Config) ResolutionMode() (importer.Mode, error) {
	return importer.ParseMode(c.Mode)
}

// IncludePatterns returns Include, or DefaultInclude when it is empty.
func (c *Config) IncludePatterns() []string {
	if len(c.Include) == 0 {
		return []string{DefaultInclude}
	}
	return c.Include
}
