/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan finds import specifiers that are ambiguous within a tree.
package scan

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"bennypowers.dev/sassresolve/config"
	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/importer"
)

// Options configures a scan.
type Options struct {
	// Include lists doublestar globs, relative to the root, selecting the
	// files whose import identities are checked. Defaults to
	// config.DefaultInclude.
	Include []string
}

// Conflict is a specifier that more than one file answers to.
type Conflict struct {
	// Specifier is the extensionless, root-relative import path.
	Specifier string

	// Mode is the mode in which the specifier is ambiguous.
	Mode importer.Mode

	// Paths lists the competing files, root-relative, in lookup order.
	Paths []string
}

// Report is the result of a scan.
type Report struct {
	// Files is the number of stylesheets matched by the include globs.
	Files int

	// Specifiers is the number of distinct import identities checked.
	Specifiers int

	// Conflicts is sorted by specifier, then mode.
	Conflicts []Conflict
}

// Conflicts walks root and resolves every import identity of every included
// stylesheet in both modes, collecting the ambiguous ones.
func Conflicts(ctx context.Context, filesystem fs.FileSystem, root string, opts Options) (*Report, error) {
	include := opts.Include
	if len(include) == 0 {
		include = []string{config.DefaultInclude}
	}

	files, err := config.ExpandGlobs(filesystem, root, include)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	identities := make(map[string]bool)
	for _, f := range files {
		for _, id := range Identities(f) {
			identities[id] = true
		}
	}
	specs := make([]string, 0, len(identities))
	for id := range identities {
		specs = append(specs, id)
	}
	sort.Strings(specs)

	report := &Report{Files: len(files), Specifiers: len(specs)}
	resolver := importer.NewResolver(filesystem)

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, mode := range []importer.Mode{importer.ModeImport, importer.ModeUse} {
			res := resolver.Resolve(importer.WithMode(ctx, mode), spec)
			if res.Outcome != importer.Ambiguous {
				continue
			}
			paths := make([]string, len(res.Candidates))
			for i, c := range res.Candidates {
				paths[i] = relative(root, c)
			}
			report.Conflicts = append(report.Conflicts, Conflict{
				Specifier: relative(root, spec),
				Mode:      mode,
				Paths:     paths,
			})
		}
	}

	return report, nil
}

// Identities returns the extensionless specifiers under which file can be
// loaded: its path without partial prefix, ".import" infix and extension,
// and for index files also the containing directory. A file without a
// stylesheet extension has none.
func Identities(file string) []string {
	ext := filepath.Ext(file)
	if !importer.IsStylesheetExt(ext) {
		return nil
	}

	dir, base := filepath.Split(file)
	name := strings.TrimSuffix(base, ext)
	name = strings.TrimSuffix(name, ".import")
	name = strings.TrimPrefix(name, importer.PartialPrefix)
	if name == "" {
		return nil
	}

	ids := []string{filepath.Join(dir, name)}
	if name == "index" && dir != "" {
		ids = append(ids, filepath.Clean(dir))
	}
	return ids
}

// WriteText writes a human-readable report.
func (r *Report) WriteText(w io.Writer) error {
	for _, c := range r.Conflicts {
		if _, err := fmt.Fprintf(w, "%s (@%s)\n", c.Specifier, c.Mode); err != nil {
			return err
		}
		for _, p := range c.Paths {
			if _, err := fmt.Fprintf(w, "  %s\n", p); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d conflicts in %d specifiers (%d files)\n", len(r.Conflicts), r.Specifiers, r.Files)
	return err
}

func relative(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
