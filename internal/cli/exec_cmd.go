// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// =============================================================================
// EXEC COMMAND
// =============================================================================

func execCmd(opts *Options) *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run one propdesk command and exit",
		Long: `Run a single command line, for example:

  propdesk exec addbuyer n/John Tan p/91234567 e/john@example.com
  propdesk exec --json list k/properties

Exit status is 0 on success, 1 when the command could not be carried out
and 2 when the command line is malformed.`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := Open(*opts)
			if err != nil {
				return err
			}
			defer app.Close()

			return runExec(app, strings.Join(args, " "), jsonMode, cmd)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print a JSON response")
	return cmd
}

func runExec(app *App, line string, jsonMode bool, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	requestID := newRequestID()
	logger := app.Logger.With("request_id", requestID)

	word := ""
	if spec := app.Registry.Get(firstField(line)); spec != nil {
		word = spec.Word
	}

	fail := func(err error, code int) error {
		logger.Info("command rejected", "command", word, "exit_code", code)
		if jsonMode {
			if werr := NewJSONErrorResponse(word, requestID, err).Write(out); werr != nil {
				return werr
			}
			return &ExitError{Code: code, Err: err, Reported: true}
		}
		return &ExitError{Code: code, Err: err}
	}

	c, err := app.Registry.Parse(line)
	if err != nil {
		return fail(err, ExitUsageError)
	}
	result, err := c.Execute(app.Model)
	if err != nil {
		return fail(err, ExitGeneralError)
	}
	logger.Info("command executed", "command", c.Word())

	persistErr := app.Model.LastPersistError()
	if persistErr != nil {
		persistErr = fmt.Errorf("changes could not be saved: %w", persistErr)
	}

	if jsonMode {
		if persistErr != nil {
			return fail(persistErr, ExitGeneralError)
		}
		data := ExecData{
			Feedback: result.Feedback,
			Display:  app.Model.Display().String(),
			View:     ViewTables(app.Model, true),
		}
		return NewJSONResponse(c.Word(), requestID, data).Write(out)
	}

	render := NewRenderer(out, RenderOptions{Color: ColorsEnabled(app.Config.UI.Color, out)})
	render.Feedback(result.Feedback)
	if result.ShowHelp {
		render.Help(app.Registry.HelpMarkdown())
	}
	if persistErr != nil {
		return &ExitError{Code: ExitGeneralError, Err: persistErr}
	}
	return nil
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
