// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/propdesk/internal/model"
	"github.com/jeranaias/propdesk/internal/util"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports snapshots as Markdown tables with aligned columns.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export renders a heading and one table per book.
func (e *MarkdownExporter) Export(s model.Snapshot) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# propdesk export\n\n")
	if e.options.IncludeMetadata {
		sb.WriteString(fmt.Sprintf("- **Exported**: %s\n", e.options.now().Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("- **Clients**: %d\n", len(s.Clients)))
		sb.WriteString(fmt.Sprintf("- **Properties**: %d\n", len(s.Properties)))
		sb.WriteString(fmt.Sprintf("- **Meetings**: %d\n", len(s.Meetings)))
		sb.WriteString("\n")
	}

	for i, t := range Tables(s) {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeMarkdownTable(&sb, t)
	}
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// HELPERS
// =============================================================================

func writeMarkdownTable(sb *strings.Builder, t Table) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))
	if len(t.Rows) == 0 {
		sb.WriteString(fmt.Sprintf("_No %s._\n", strings.ToLower(t.Title)))
		return
	}

	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = util.Width(h)
	}
	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(row))
		for i, cell := range row {
			cells[r][i] = escapeCell(cell)
			if w := util.Width(cells[r][i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeRow := func(row []string) {
		sb.WriteString("|")
		for i, cell := range row {
			sb.WriteString(" " + util.PadRight(cell, widths[i]) + " |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Header)
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2) + "|")
	}
	sb.WriteString("\n")
	for _, row := range cells {
		writeRow(row)
	}
}

// escapeCell keeps a value from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
