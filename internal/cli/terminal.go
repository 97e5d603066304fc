// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for propdesk.
//
// Decides between the interactive REPL and batch mode, and whether output
// is coloured:
//   - Interactive terminals get a prompt, history and colours
//   - Piped input runs as a batch with plain output
//   - NO_COLOR and FORCE_COLOR are honoured in "auto" colour mode

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdin)
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the width of w if it is a terminal, or
// DefaultTerminalWidth.
func GetTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled resolves a ui.color setting ("auto", "always", "never")
// for output written to w. See https://no-color.org/.
func ColorsEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return isTerminal(w)
}

// GetColorProfile returns the termenv profile to use for w. Ascii disables
// all colour.
func GetColorProfile(enabled bool, w io.Writer) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii {
		// Colour was forced on for a non-terminal.
		return termenv.ANSI256
	}
	return profile
}
