/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"context"
	"path/filepath"

	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/specifier"
)

// FilesystemImporter resolves path and file: URLs relative to a load path.
type FilesystemImporter struct {
	loadPath string
	resolver *Resolver
}

// NewFilesystemImporter creates an importer rooted at loadPath.
func NewFilesystemImporter(filesystem fs.FileSystem, loadPath string) *FilesystemImporter {
	return &FilesystemImporter{
		loadPath: loadPath,
		resolver: NewResolver(filesystem),
	}
}

// LoadPath returns the directory relative URLs are resolved against.
func (i *FilesystemImporter) LoadPath() string {
	return i.loadPath
}

// Canonicalize resolves url and returns the absolute, cleaned path of the
// matching file. Built-in and pkg: URLs are not handled and yield "".
func (i *FilesystemImporter) Canonicalize(ctx context.Context, url string) (string, error) {
	spec := specifier.Parse(url)
	if !spec.IsFilesystem() {
		return "", nil
	}

	target := spec.Path
	if !filepath.IsAbs(target) {
		target = filepath.Join(i.loadPath, target)
	}

	resolved, err := i.resolver.ResolveImportPath(ctx, target)
	if err != nil || resolved == "" {
		return "", err
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return filepath.Clean(resolved), nil
	}
	return abs, nil
}
