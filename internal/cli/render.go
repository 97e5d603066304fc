// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeranaias/propdesk/internal/export"
	"github.com/jeranaias/propdesk/internal/model"
	"github.com/jeranaias/propdesk/internal/util"
)

// maxCellWidth caps table cells so one long email cannot push a table past
// the terminal edge.
const maxCellWidth = 40

// =============================================================================
// RENDERER
// =============================================================================

// RenderOptions configures a Renderer.
type RenderOptions struct {
	Color bool
	Width int

	// ShowMeetings appends the meeting table to every view.
	ShowMeetings bool
}

// Renderer writes feedback, errors, help and record tables.
type Renderer struct {
	out    io.Writer
	styles Styles
	opts   RenderOptions

	markdown *glamour.TermRenderer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, opts RenderOptions) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultTerminalWidth
	}
	return &Renderer{
		out:    out,
		styles: NewStyles(out, opts.Color),
		opts:   opts,
	}
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() Styles { return r.styles }

// Feedback prints the result message of a successful command.
func (r *Renderer) Feedback(msg string) {
	fmt.Fprintln(r.out, r.styles.Render(r.styles.Success, msg))
}

// Error prints a parse or command error.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.styles.Render(r.styles.Error, err.Error()))
}

// Warning prints a non-fatal problem.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.out, r.styles.Render(r.styles.Warning, "Warning: "+msg))
}

// Notice prints a low-key informational line.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, r.styles.Render(r.styles.Dim, msg))
}

// Help prints the command reference. With colour on it is rendered through
// glamour; otherwise the Markdown source is printed as is.
func (r *Renderer) Help(md string) {
	if !r.styles.Color() {
		fmt.Fprint(r.out, md)
		return
	}
	if r.markdown == nil {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.opts.Width),
		)
		if err != nil {
			fmt.Fprint(r.out, md)
			return
		}
		r.markdown = tr
	}
	rendered, err := r.markdown.Render(md)
	if err != nil {
		fmt.Fprint(r.out, md)
		return
	}
	fmt.Fprint(r.out, rendered)
}

// =============================================================================
// VIEWS
// =============================================================================

// ViewTables returns the tables that make up the current view: the filtered
// clients or properties, depending on the display mode, then the filtered
// meetings when withMeetings is set.
func ViewTables(m *model.Model, withMeetings bool) []export.Table {
	var tables []export.Table
	if m.Display() == model.ShowingProperties {
		tables = append(tables, export.PropertyTable(m.FilteredProperties()))
	} else {
		tables = append(tables, export.ClientTable(m.FilteredClients()))
	}
	if withMeetings {
		tables = append(tables, export.MeetingTable(m.FilteredMeetings()))
	}
	return tables
}

// View prints the current view of m.
func (r *Renderer) View(m *model.Model) {
	for _, t := range ViewTables(m, r.opts.ShowMeetings) {
		fmt.Fprintln(r.out, r.Table(t))
	}
}

// Table renders t with a title line. An empty table renders as a note.
func (r *Renderer) Table(t export.Table) string {
	title := r.styles.Render(r.styles.Title, fmt.Sprintf("%s (%d)", t.Title, len(t.Rows)))
	if len(t.Rows) == 0 {
		return title + "\n" + r.styles.Render(r.styles.Dim, fmt.Sprintf("No %s to show.", strings.ToLower(t.Title)))
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = util.Truncate(cell, maxCellWidth)
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Dim).
		Headers(t.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		})

	return title + "\n" + tbl.Render()
}
