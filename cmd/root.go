/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for sassresolve.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/sassresolve/cmd/conflicts"
	"bennypowers.dev/sassresolve/cmd/resolve"
	"bennypowers.dev/sassresolve/cmd/version"
	"bennypowers.dev/sassresolve/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sassresolve",
	Short: "Resolve stylesheet imports to files",
	Long: `sassresolve resolves Sass import specifiers to files on disk, following the
filesystem importer rules: partials, .sass/.scss/.css extensions, index files,
and the .import files that only @import considers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("root", ".", "Project root (where .config/sassresolve.yaml lives)")
	flags.StringArrayP("load-path", "I", nil, "Load path to search (repeatable, searched after config load paths)")
	flags.String("mode", "", "Resolution mode: import (default) or use")
	flags.BoolP("verbose", "v", false, "Log each lookup to stderr")

	for _, name := range []string{"root", "load-path", "mode", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("SASSRESOLVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(conflicts.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
