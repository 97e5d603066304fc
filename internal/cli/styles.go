// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for propdesk output.
//
// Styles are built per output so that piped output and tests stay free of
// escape sequences.

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// STYLES
// =============================================================================

// Styles holds every style used by the renderer.
type Styles struct {
	color bool

	// Title is used for table titles
	// Color: Cyan (#39)
	Title lipgloss.Style

	// Header is used for table header cells
	// Color: White (#255)
	Header lipgloss.Style

	// Cell is used for regular table cells
	// Color: Off-white (#252)
	Cell lipgloss.Style

	// Success is used for command feedback
	// Color: Green (#42)
	Success lipgloss.Style

	// Error is used for parse and command errors
	// Color: Red (#196)
	Error lipgloss.Style

	// Warning is used for persistence warnings
	// Color: Yellow/Orange (#214)
	Warning lipgloss.Style

	// Dim is used for borders, hints and reload notices
	// Color: Dim gray (#242)
	Dim lipgloss.Style
}

// NewStyles builds styles bound to w. When color is false every Render call
// returns its input unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(GetColorProfile(color, w))

	return Styles{
		color:   color,
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1),
		Cell:    r.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		Success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// Color reports whether the styles emit colour.
func (s Styles) Color() bool { return s.color }

// Render renders text with style if colors are enabled, otherwise returns
// the text unmodified.
func (s Styles) Render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
