/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package importcache canonicalizes import URLs the way a compiler does:
// relative to the importing file first, then against each load path in
// order, memoizing results per resolution mode.
package importcache

import (
	"context"
	"fmt"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/importer"
	"bennypowers.dev/sassresolve/internal/logger"
)

// DefaultSize is the number of canonicalizations kept when Options.Size is zero.
const DefaultSize = 512

// Options configures a Cache.
type Options struct {
	// LoadPaths are searched in order after the importing file's directory.
	LoadPaths []string

	// Size bounds the number of memoized lookups. Defaults to DefaultSize.
	Size int
}

// Result describes a canonicalized import.
type Result struct {
	// Specifier is the URL as written in the stylesheet.
	Specifier string

	// Path is the absolute path of the file, or "" if nothing matched.
	Path string

	// LoadPath is the directory the URL was resolved against. It is the
	// importing file's directory for relative hits.
	LoadPath string

	// Mode is the mode the lookup ran in.
	Mode importer.Mode
}

// Found returns true if the import resolved to a file.
func (r Result) Found() bool {
	return r.Path != ""
}

type cacheKey struct {
	mode    importer.Mode
	fromDir string
	url     string
}

// Cache memoizes canonicalization. It is safe for concurrent use.
type Cache struct {
	fs        fs.FileSystem
	loadPaths *importer.Chain
	entries   *lru.Cache[cacheKey, Result]
}

// New creates a cache over filesystem.
func New(filesystem fs.FileSystem, opts Options) (*Cache, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[cacheKey, Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create import cache: %w", err)
	}

	importers := make([]importer.Importer, 0, len(opts.LoadPaths))
	for _, lp := range opts.LoadPaths {
		if !fs.DirExists(filesystem, lp) {
			logger.Warn("load path %s is not a directory", lp)
		}
		importers = append(importers, importer.NewFilesystemImporter(filesystem, lp))
	}

	return &Cache{
		fs:        filesystem,
		loadPaths: importer.NewChain(importers...),
		entries:   entries,
	}, nil
}

// Canonicalize resolves url as written in the file from, in the mode carried
// by ctx. An empty from skips the relative lookup. A miss is a Result with an
// empty Path and a nil error; ambiguity is an error and is never cached.
func (c *Cache) Canonicalize(ctx context.Context, url, from string) (Result, error) {
	key := cacheKey{mode: importer.ModeOf(ctx), url: url}
	if from != "" {
		key.fromDir = filepath.Dir(from)
	}

	if res, ok := c.entries.Get(key); ok {
		logger.Debug("import cache hit: %s from %s (%s)", url, key.fromDir, key.mode)
		return res, nil
	}

	res, err := c.canonicalize(ctx, key)
	if err != nil {
		return Result{Specifier: url, Mode: key.mode}, err
	}
	c.entries.Add(key, res)
	return res, nil
}

// MustCanonicalize is Canonicalize that treats a miss as ErrNotFound.
func (c *Cache) MustCanonicalize(ctx context.Context, url, from string) (Result, error) {
	res, err := c.Canonicalize(ctx, url, from)
	if err != nil {
		return res, err
	}
	if !res.Found() {
		return res, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	return res, nil
}

func (c *Cache) canonicalize(ctx context.Context, key cacheKey) (Result, error) {
	res := Result{Specifier: key.url, Mode: key.mode}

	if key.fromDir != "" {
		relative := importer.NewFilesystemImporter(c.fs, key.fromDir)
		p, err := relative.Canonicalize(ctx, key.url)
		if err != nil {
			return res, err
		}
		if p != "" {
			res.Path, res.LoadPath = p, key.fromDir
			return res, nil
		}
	}

	imp, p, err := c.loadPaths.CanonicalizeWith(ctx, key.url)
	if err != nil {
		return res, err
	}
	if p != "" {
		res.Path = p
		if fsImp, ok := imp.(*importer.FilesystemImporter); ok {
			res.LoadPath = fsImp.LoadPath()
		}
	}
	return res, nil
}

// Len returns the number of memoized lookups.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Clear forgets every memoized lookup, e.g. after files were added or removed.
func (c *Cache) Clear() {
	c.entries.Purge()
}
