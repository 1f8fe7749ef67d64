/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package conflicts provides the conflicts command for sassresolve.
package conflicts

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/sassresolve/cmd/project"
	"bennypowers.dev/sassresolve/cmd/render"
	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/scan"
)

// Cmd is the conflicts cobra command.
var Cmd = &cobra.Command{
	Use:   "conflicts [dir]",
	Short: "Report ambiguous import specifiers in a tree",
	Long: `Walk a directory (the project root by default) and report every specifier
that more than one stylesheet answers to, under @import or @use rules.
Which files are considered is controlled by the "include" config globs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	p, err := project.Load(viper.GetViper(), filesystem)
	if err != nil {
		return err
	}

	dir := p.Root
	if len(args) == 1 {
		if dir, err = filepath.Abs(args[0]); err != nil {
			return fmt.Errorf("invalid directory %s: %w", args[0], err)
		}
	}
	if !fs.DirExists(filesystem, dir) {
		return fmt.Errorf("%s is not a directory", dir)
	}

	report, err := scan.Conflicts(cmd.Context(), filesystem, dir, scan.Options{
		Include: p.Config.IncludePatterns(),
	})
	if err != nil {
		return err
	}
	if err := render.Report(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}
	if n := len(report.Conflicts); n > 0 {
		return fmt.Errorf("found %d ambiguous specifiers", n)
	}
	return nil
}
