// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/propdesk/internal/export"
)

// =============================================================================
// EXPORT COMMAND
// =============================================================================

func exportCmd(opts *Options) *cobra.Command {
	var (
		format   string
		outDir   string
		noHeader bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every book to a Markdown, JSON or CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exportOpts := export.DefaultOptions()
			exportOpts.OutputDir = outDir
			exportOpts.IncludeMetadata = !noHeader

			exporter, err := export.ForFormat(format, exportOpts)
			if err != nil {
				return usageError(err)
			}

			app, err := Open(*opts)
			if err != nil {
				return err
			}
			defer app.Close()

			path, err := export.ExportToFile(app.Model.Snapshot(), exporter, exportOpts)
			if err != nil {
				return err
			}
			app.Logger.Info("books exported", "format", strings.ToLower(format), "path", path)

			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown",
		"output format: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&noHeader, "no-metadata", false, "omit the export time and record counts")
	return cmd
}
