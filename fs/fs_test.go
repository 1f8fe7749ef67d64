/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/internal/mapfs"
)

func TestFileExists_DirExists(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/styles/_base.scss", "", 0644)
	mfs.AddDir("/project/empty", 0755)

	tests := []struct {
		path string
		file bool
		dir  bool
	}{
		{"/project/styles/_base.scss", true, false},
		{"/project/styles", false, true},
		{"/project/empty", false, true},
		{"/project/styles/base.scss", false, false},
		{"/nowhere", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := fs.FileExists(mfs, tt.path); got != tt.file {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.file)
			}
			if got := fs.DirExists(mfs, tt.path); got != tt.dir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.dir)
			}
		})
	}
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "_colors.scss")
	if err := os.WriteFile(file, []byte("$red: #f00;"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	osfs := fs.NewOSFileSystem()
	if !fs.FileExists(osfs, file) {
		t.Errorf("expected %s to exist as a file", file)
	}
	if fs.DirExists(osfs, file) {
		t.Errorf("expected %s not to be a directory", file)
	}
	if !fs.DirExists(osfs, dir) {
		t.Errorf("expected %s to be a directory", dir)
	}
	if !osfs.Exists(dir) {
		t.Errorf("expected Exists(%s) to be true", dir)
	}

	data, err := osfs.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "$red: #f00;" {
		t.Errorf("ReadFile = %q", data)
	}
}
