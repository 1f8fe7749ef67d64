/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// PrettyURI renders path for diagnostics: relative to the working directory
// when it lies beneath it, otherwise as a file: URL.
func PrettyURI(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return fileURL(path)
	}
	return prettyURIFrom(wd, path)
}

func prettyURIFrom(wd, path string) string {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(wd, abs)
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fileURL(abs)
	}
	return filepath.ToSlash(rel)
}

func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths: file:///C:/...
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
