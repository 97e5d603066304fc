// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCommand builds the propdesk command tree.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "propdesk",
		Short: "Keep track of property buyers, sellers, listings and meetings",
		Long: `propdesk is a command-driven record book for property agents.

Run it without arguments for an interactive prompt, or pipe command lines
into it to run them as a batch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Open(*opts)
			if err != nil {
				return err
			}
			defer app.Close()

			if isTerminal(cmd.InOrStdin()) {
				return RunInteractive(app, cmd.OutOrStdout())
			}
			return RunBatch(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.propdesk/config.toml)")
	root.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding the JSON books")
	root.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend: json or sqlite")
	root.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable coloured output")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(
		execCmd(opts),
		exportCmd(opts),
		configCmd(opts),
		versionCmd(),
	)
	return root
}

// Execute runs the root command with os.Args and returns the exit code.
func Execute() int {
	root := NewRootCommand()
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	DisplayError(os.Stderr, err, NewStyles(os.Stderr, ColorsEnabled("auto", os.Stderr)))
	return GetExitCode(err)
}

// requireArgs is cobra.MinimumNArgs with a usage exit code.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError(fmt.Errorf("%s requires at least %d argument(s)\nUsage: %s", cmd.Name(), n, cmd.UseLine()))
		}
		return nil
	}
}
