/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for sassresolve.
package resolve

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/sassresolve/cmd/project"
	"bennypowers.dev/sassresolve/cmd/render"
	"bennypowers.dev/sassresolve/fs"
	"bennypowers.dev/sassresolve/importcache"
	"bennypowers.dev/sassresolve/importer"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier...>",
	Short: "Resolve import specifiers to files",
	Long: `Resolve each specifier as an @import (default) or @use would, printing the
file it loads.

With --from, specifiers are first resolved relative to that file, then against
the load paths. Without it, the project root is searched first.

Examples:
  sassresolve resolve theme/colors
  sassresolve resolve --mode use --from src/main.scss buttons
  sassresolve resolve -I node_modules/bootstrap/scss grid --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("from", "", "Stylesheet containing the imports")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	format, _ := cmd.Flags().GetString("format")

	p, err := project.Load(viper.GetViper(), fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return Run(cmd.Context(), p, Options{
		Specifiers: args,
		From:       from,
		Format:     format,
		Out:        cmd.OutOrStdout(),
		ErrOut:     cmd.ErrOrStderr(),
	})
}

// Options configures Run.
type Options struct {
	Specifiers []string
	From       string
	Format     string
	Out        io.Writer
	ErrOut     io.Writer
}

// Run resolves every specifier and renders the results. It fails if any
// specifier is missing or ambiguous.
func Run(ctx context.Context, p *project.Project, opts Options) error {
	loadPaths := p.LoadPaths
	from := opts.From
	if from == "" {
		loadPaths = append([]string{p.Root}, loadPaths...)
	} else if !filepath.IsAbs(from) {
		abs, err := filepath.Abs(from)
		if err != nil {
			return fmt.Errorf("invalid --from path %s: %w", from, err)
		}
		from = abs
	}

	cache, err := importcache.New(p.FS, importcache.Options{
		LoadPaths: loadPaths,
		Size:      p.Config.CacheSize,
	})
	if err != nil {
		return err
	}

	ctx = importer.WithMode(ctx, p.Mode)
	rows := make([]render.Row, 0, len(opts.Specifiers))
	failed := 0
	for _, spec := range opts.Specifiers {
		res, err := cache.MustCanonicalize(ctx, spec, from)
		if err != nil {
			failed++
		}
		rows = append(rows, render.NewRow(spec, p.Mode, res, err))
	}

	if err := render.Rows(opts.Out, opts.ErrOut, rows, opts.Format); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d specifiers did not resolve", failed, len(opts.Specifiers))
	}
	return nil
}
