/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importer resolves stylesheet import specifiers to files on disk.
//
// A specifier such as "theme/colors" may name theme/_colors.scss,
// theme/colors.sass, theme/colors/_index.scss, or, for @import only,
// theme/colors.import.scss. The Resolver applies those rules in a fixed
// order and reports an ambiguity whenever a step matches more than one file.
//
// Whether ".import" files are considered depends on the Mode carried by the
// context.Context passed to each call; see WithMode and InUseRule.
package importer

import (
	"context"
	"path/filepath"
	"strings"

	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/internal/logger"
)

// Recognized stylesheet extensions, in search order.
const (
	ExtSass = ".sass"
	ExtSCSS = ".scss"
	ExtCSS  = ".css"
)

const (
	// PartialPrefix marks a partial's basename.
	PartialPrefix = "_"

	importSuffix = ".import"
	indexName    = "index"
)

// Resolver resolves specifiers against a FileSystem. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	fs fs.FileSystem
}

// NewResolver creates a resolver over filesystem.
func NewResolver(filesystem fs.FileSystem) *Resolver {
	return &Resolver{fs: filesystem}
}

// ResolveImportPath returns the file that path names, "" if nothing matches, or
// an *AmbiguousImportError if a lookup step matched more than one file.
func (r *Resolver) ResolveImportPath(ctx context.Context, path string) (string, error) {
	res := r.Resolve(ctx, path)
	return res.Path, res.Err()
}

// Resolve resolves path in the mode carried by ctx.
func (r *Resolver) Resolve(ctx context.Context, path string) Resolution {
	mode := ModeOf(ctx)
	res := r.resolve(path, mode)
	logger.Debug("resolve %s (%s): %s %s", path, mode, res.Outcome, res.Path)
	return res
}

func (r *Resolver) resolve(path string, mode Mode) Resolution {
	if ext := extension(path); IsStylesheetExt(ext) {
		if mode == ModeImport {
			base := strings.TrimSuffix(path, ext)
			if res := exactlyOne(r.lookupCandidates(base + importSuffix + ext)); res.Outcome != NotFound {
				return res
			}
		}
		return exactlyOne(r.lookupCandidates(path))
	}

	if mode == ModeImport {
		if res := exactlyOne(r.searchExtensions(path + importSuffix)); res.Outcome != NotFound {
			return res
		}
	}
	if res := exactlyOne(r.searchExtensions(path)); res.Outcome != NotFound {
		return res
	}
	return r.resolveAsDirectory(path, mode)
}

// searchExtensions merges the .sass and .scss candidates for base, falling
// back to .css only when both are empty. A .sass and a .scss file with the
// same name are reported together so the caller sees the ambiguity.
func (r *Resolver) searchExtensions(base string) []string {
	candidates := append(r.lookupCandidates(base+ExtSass), r.lookupCandidates(base+ExtSCSS)...)
	if len(candidates) > 0 {
		return candidates
	}
	return r.lookupCandidates(base + ExtCSS)
}

// lookupCandidates returns the partial form of path followed by path itself,
// keeping only those that exist.
func (r *Resolver) lookupCandidates(path string) []string {
	var candidates []string
	if partial := partialPath(path); fs.FileExists(r.fs, partial) {
		candidates = append(candidates, partial)
	}
	if fs.FileExists(r.fs, path) {
		candidates = append(candidates, path)
	}
	return candidates
}

func (r *Resolver) resolveAsDirectory(path string, mode Mode) Resolution {
	if !fs.DirExists(r.fs, path) {
		return Resolution{Outcome: NotFound}
	}
	if mode == ModeImport {
		if res := exactlyOne(r.searchExtensions(filepath.Join(path, indexName+importSuffix))); res.Outcome != NotFound {
			return res
		}
	}
	return exactlyOne(r.searchExtensions(filepath.Join(path, indexName)))
}

// IsStylesheetExt reports whether ext (including the dot) is .sass, .scss
// or .css.
func IsStylesheetExt(ext string) bool {
	switch ext {
	case ExtSass, ExtSCSS, ExtCSS:
		return true
	}
	return false
}

// partialPath prefixes the basename of path with the partial marker, leaving
// the directory part exactly as written.
func partialPath(path string) string {
	dir, file := filepath.Split(path)
	return dir + PartialPrefix + file
}

// extension returns the last dotted suffix of the basename. A basename that
// starts with its only dot, such as ".scss", has no extension.
func extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}
