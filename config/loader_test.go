/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/sassresolve/importer"
	"bennypowers.dev/sassresolve/internal/logger"
	"bennypowers.dev/sassresolve/internal/mapfs"
	"bennypowers.dev/sassresolve/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	mode, err := cfg.ResolutionMode()
	if err != nil {
		t.Fatalf("unexpected mode error: %v", err)
	}
	if mode != importer.ModeUse {
		t.Errorf("expected mode use, got %v", mode)
	}
	if cfg.CacheSize != 64 {
		t.Errorf("expected cacheSize 64, got %d", cfg.CacheSize)
	}

	wantLoadPaths := []LoadPath{{Path: "scss"}, {Path: "node_modules/**/scss"}, {Path: "missing"}}
	if !reflect.DeepEqual(cfg.LoadPaths, wantLoadPaths) {
		t.Errorf("LoadPaths = %+v, want %+v", cfg.LoadPaths, wantLoadPaths)
	}
	if !reflect.DeepEqual(cfg.IncludePatterns(), []string{"src/**/*.scss"}) {
		t.Errorf("IncludePatterns() = %v", cfg.IncludePatterns())
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	want := []LoadPath{{Path: "styles", Required: true}, {Path: "vendor"}}
	if !reflect.DeepEqual(cfg.LoadPaths, want) {
		t.Errorf("LoadPaths = %+v, want %+v", cfg.LoadPaths, want)
	}
	if cfg.Mode != "import" {
		t.Errorf("Mode = %q, want import", cfg.Mode)
	}
	if !reflect.DeepEqual(cfg.IncludePatterns(), []string{DefaultInclude}) {
		t.Errorf("IncludePatterns() = %v, want default", cfg.IncludePatterns())
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid-mode", "/project")

	_, err := Load(mfs, "/project")
	var unknown *importer.UnknownModeError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *importer.UnknownModeError", err)
	}

	cfg := LoadOrDefault(mfs, "/project")
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("LoadOrDefault with a bad config = %+v, want defaults", cfg)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	if got := LoadOrDefault(mfs, "/project"); !reflect.DeepEqual(got, Default()) {
		t.Errorf("LoadOrDefault = %+v, want defaults", got)
	}
}

func TestLoad_YAMLPreferredOverJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/sassresolve.json", `{"mode": "import"}`, 0644)
	mfs.AddFile("/project/.config/sassresolve.yml", "mode: use\n", 0644)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != "use" {
		t.Errorf("Mode = %q, want use from the .yml file", cfg.Mode)
	}
}

func TestExpandLoadPaths(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cfg.ExpandLoadPaths(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"/project/scss",
		"/project/node_modules/@acme/tokens/scss",
		"/project/node_modules/widgets/scss",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandLoadPaths() = %v, want %v", got, want)
	}
}

func TestExpandLoadPaths_RequiredMissing(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")
	cfg := &Config{LoadPaths: []LoadPath{{Path: "styles"}, {Path: "vendor", Required: true}}}

	_, err := cfg.ExpandLoadPaths(mfs, "/project")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestExpandLoadPaths_Deduplicates(t *testing.T) {
	mfs := testutil.NewTreeFS(t, "/project/a/x.scss", "/project/b/y.scss")
	cfg := &Config{LoadPaths: []LoadPath{{Path: "b"}, {Path: "*"}, {Path: "/project/a"}}}

	got, err := cfg.ExpandLoadPaths(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"/project/b", "/project/a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandLoadPaths() = %v, want %v", got, want)
	}
}

func TestExpandGlobs(t *testing.T) {
	mfs := testutil.NewTreeFS(t,
		"/project/src/main.scss",
		"/project/src/_partial.sass",
		"/project/src/nested/theme.css",
		"/project/src/readme.md",
		"/project/build/out.css",
	)

	got, err := ExpandGlobs(mfs, "/project", []string{"src/**/*.{sass,scss}", "build/*.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"/project/build/out.css",
		"/project/src/_partial.sass",
		"/project/src/main.scss",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandGlobs() = %v, want %v", got, want)
	}
}

func TestLoadPath_UnmarshalYAML_String(t *testing.T) {
	var lp LoadPath
	if err := yaml.Unmarshal([]byte(`vendor/scss`), &lp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Path != "vendor/scss" || lp.Required {
		t.Errorf("got %+v", lp)
	}
}

func TestLoadPath_UnmarshalJSON_Object(t *testing.T) {
	var lp LoadPath
	if err := json.Unmarshal([]byte(`{"path": "lib", "required": true}`), &lp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp.Path != "lib" || !lp.Required {
		t.Errorf("got %+v", lp)
	}
}
