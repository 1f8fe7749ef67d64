/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		path string
		pkg  string
		isFS bool
	}{
		{"relative path", "theme/colors", KindPath, "theme/colors", "", true},
		{"relative with extension", "../base/_reset.scss", KindPath, "../base/_reset.scss", "", true},
		{"absolute path", "/project/styles/main", KindPath, "/project/styles/main", "", true},
		{"percent encoded", "my%20theme/colors", KindPath, "my theme/colors", "", true},
		{"invalid escape kept", "100%/width", KindPath, "100%/width", "", true},
		{"file url", "file:///project/styles/_vars.scss", KindFileURL, "/project/styles/_vars.scss", "", true},
		{"file url with escapes", "file:///project/my%20dir/a.scss", KindFileURL, "/project/my dir/a.scss", "", true},
		{"builtin", "sass:math", KindBuiltin, "math", "", false},
		{"scoped package", "pkg:@design/tokens/scss/colors", KindPackage, "scss/colors", "@design/tokens", false},
		{"bare package", "pkg:bootstrap", KindPackage, "", "bootstrap", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Parse(tt.raw)
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", spec.Kind, tt.kind)
			}
			if spec.Path != tt.path {
				t.Errorf("Path = %q, want %q", spec.Path, tt.path)
			}
			if spec.Package != tt.pkg {
				t.Errorf("Package = %q, want %q", spec.Package, tt.pkg)
			}
			if spec.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", spec.Raw, tt.raw)
			}
			if spec.IsFilesystem() != tt.isFS {
				t.Errorf("IsFilesystem() = %v, want %v", spec.IsFilesystem(), tt.isFS)
			}
		})
	}
}

func TestParse_FileURLWithRemoteHostIsAPath(t *testing.T) {
	spec := Parse("file://example.com/styles.scss")
	if spec.Kind != KindPath {
		t.Errorf("Kind = %v, want KindPath", spec.Kind)
	}
}

func TestKindString(t *testing.T) {
	if KindBuiltin.String() != "builtin" {
		t.Errorf("KindBuiltin.String() = %q", KindBuiltin.String())
	}
	if Kind(42).String() != "unknown" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
