// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit codes and error display for propdesk commands.
//
// Command handlers always return errors; Execute decides how to show them
// and which exit code to use.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jeranaias/propdesk/internal/commands"
	"github.com/jeranaias/propdesk/internal/config"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a failed command or an unexpected error
	ExitGeneralError = 1
	// ExitUsageError indicates a malformed command line
	ExitUsageError = 2
	// ExitConfigError indicates a bad configuration file or setting
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ExitError carries an explicit exit code. Reported is set when the error
// has already been shown to the user, for example inside a JSON response.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsageError, Err: err}
}

func configError(err error) error {
	return &ExitError{Code: ExitConfigError, Err: err}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode determines the exit code for an error.
//   - ExitError: its own code
//   - commands.ParseError: ExitUsageError
//   - config.ValidateErrors: ExitConfigError
//   - anything else, including commands.CommandError: ExitGeneralError
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *commands.ParseError
	if errors.As(err, &parseErr) {
		return ExitUsageError
	}

	var validateErrs config.ValidateErrors
	if errors.As(err, &validateErrs) {
		return ExitConfigError
	}

	return ExitGeneralError
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err to w unless it was already reported.
func DisplayError(w io.Writer, err error, styles Styles) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return
	}
	fmt.Fprintf(w, "%s %s\n", styles.Render(styles.Error, "[ERROR]"), err.Error())
}
