/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"bennypowers.dev/sassresolve/importcache"
	"bennypowers.dev/sassresolve/importer"
	"bennypowers.dev/sassresolve/scan"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	pathColor  = color.New(color.FgCyan)
)

// Row holds the display values for one resolved specifier.
type Row struct {
	Specifier string   `json:"specifier"`
	Path      string   `json:"path,omitempty"`
	LoadPath  string   `json:"loadPath,omitempty"`
	Mode      string   `json:"mode"`
	Error     string   `json:"error,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// NewRow builds a Row from a cache lookup.
func NewRow(spec string, mode importer.Mode, res importcache.Result, err error) Row {
	row := Row{
		Specifier: spec,
		Path:      res.Path,
		LoadPath:  res.LoadPath,
		Mode:      mode.String(),
	}
	if err != nil {
		row.Error = err.Error()
		var ambiguous *importer.AmbiguousImportError
		if errors.As(err, &ambiguous) {
			row.Conflicts = ambiguous.Paths
		}
	}
	return row
}

// Rows writes rows to out in the given format ("text" or "json"). In text
// mode failures go to errOut.
func Rows(out, errOut io.Writer, rows []Row, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "text", "":
		for _, row := range rows {
			if row.Error != "" {
				if _, err := errorColor.Fprintf(errOut, "%s: %s\n", row.Specifier, row.Error); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(out, "%s\t%s\n", row.Specifier, pathColor.Sprint(row.Path)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

// Report writes a conflict report in the given format ("text" or "json").
func Report(out io.Writer, report *scan.Report, format string) error {
	switch format {
	case "json":
		type conflictOutput struct {
			Specifier string   `json:"specifier"`
			Mode      string   `json:"mode"`
			Paths     []string `json:"paths"`
		}
		conflicts := make([]conflictOutput, 0, len(report.Conflicts))
		for _, c := range report.Conflicts {
			conflicts = append(conflicts, conflictOutput{
				Specifier: c.Specifier,
				Mode:      c.Mode.String(),
				Paths:     c.Paths,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"files":      report.Files,
			"specifiers": report.Specifiers,
			"conflicts":  conflicts,
		})
	case "text", "":
		return report.WriteText(out)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
