/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies stylesheet import URLs.
package specifier

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindPath is a plain relative or absolute path, such as "theme/colors".
	KindPath Kind = iota
	// KindFileURL is a file: URL.
	KindFileURL
	// KindBuiltin is a built-in module such as "sass:math".
	KindBuiltin
	// KindPackage is a pkg: URL naming a package dependency.
	KindPackage
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindFileURL:
		return "file"
	case KindBuiltin:
		return "builtin"
	case KindPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Specifier represents a parsed import URL.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Path is the filesystem path for path and file: URL specifiers, the
	// module name for built-ins, and the path inside the package for pkg: URLs.
	Path string

	// Package is the package name of a pkg: URL (e.g., "@scope/pkg" or "pkg").
	Package string

	// Raw is the original specifier string.
	Raw string
}

// pkgPattern matches pkg:@scope/pkg/path, pkg:pkg/path, or bare pkg:pkg
var pkgPattern = regexp.MustCompile(`^pkg:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse parses a specifier string into a Specifier struct.
func Parse(spec string) *Specifier {
	switch {
	case strings.HasPrefix(spec, "sass:"):
		return &Specifier{
			Kind: KindBuiltin,
			Path: strings.TrimPrefix(spec, "sass:"),
			Raw:  spec,
		}

	case strings.HasPrefix(spec, "pkg:"):
		if matches := pkgPattern.FindStringSubmatch(spec); len(matches) == 3 {
			return &Specifier{
				Kind:    KindPackage,
				Package: matches[1],
				Path:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}

	case strings.HasPrefix(spec, "file:"):
		if u, err := url.Parse(spec); err == nil && (u.Host == "" || u.Host == "localhost") {
			return &Specifier{
				Kind: KindFileURL,
				Path: filepath.FromSlash(u.Path),
				Raw:  spec,
			}
		}
	}

	p := spec
	if unescaped, err := url.PathUnescape(spec); err == nil {
		p = unescaped
	}
	return &Specifier{
		Kind: KindPath,
		Path: filepath.FromSlash(p),
		Raw:  spec,
	}
}

// IsFilesystem returns true if the specifier names a location on disk.
func (s *Specifier) IsFilesystem() bool {
	return s.Kind == KindPath || s.Kind == KindFileURL
}

// IsBuiltin returns true if this is a built-in module.
func (s *Specifier) IsBuiltin() bool {
	return s.Kind == KindBuiltin
}

// IsPackage returns true if this is a pkg: URL.
func (s *Specifier) IsPackage() bool {
	return s.Kind == KindPackage
}
