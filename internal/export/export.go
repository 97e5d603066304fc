// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes snapshots of the propdesk books to files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/propdesk/internal/model"
	"github.com/jeranaias/propdesk/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for snapshot exporters.
type Exporter interface {
	// Export renders every book in s.
	Export(s model.Snapshot) ([]byte, error)

	// FileExtension returns the file extension, including the dot.
	FileExtension() string

	// MimeType returns the MIME type of the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is where ExportToFile writes. Default: current directory.
	OutputDir string

	// IncludeMetadata adds a header with the export time and record counts.
	IncludeMetadata bool

	// Now stamps exports and file names. Default: time.Now.
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
		Now:             time.Now,
	}
}

func (o *Options) now() time.Time {
	if o == nil || o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ForFormat returns the exporter for a format name: markdown (or md), json or csv.
func ForFormat(name string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "csv":
		return NewCSVExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected markdown, json or csv)", name)
	}
}

// Formats lists the names ForFormat accepts, for help text.
var Formats = []string{"markdown", "json", "csv"}

// ExportToFile renders s with exporter and writes it atomically to
// propdesk-export-<timestamp><ext> in opts.OutputDir. Returns the path.
func ExportToFile(s model.Snapshot, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	content, err := exporter.Export(s)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("propdesk-export-%s%s",
		opts.now().Format("20060102_150405"),
		exporter.FileExtension(),
	)
	outputPath := filepath.Join(util.ExpandHome(dir), filename)

	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}

// =============================================================================
// TABLES
// =============================================================================

// Table is one book laid out as rows of display strings. The CLI renders
// the same tables on screen.
type Table struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// ClientTable lays out clients in book order.
func ClientTable(cs []model.Client) Table {
	t := Table{Title: "Clients", Header: []string{"#", "Type", "Name", "Phone", "Email"}, Rows: make([][]string, 0, len(cs))}
	for i, c := range cs {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(i + 1), c.Kind.String(), c.Name.String(), c.Phone.String(), c.Email.String(),
		})
	}
	return t
}

// PropertyTable lays out properties in book order. Unset prices are blank.
func PropertyTable(ps []model.Property) Table {
	t := Table{Title: "Properties", Header: []string{"#", "Postal Code", "Unit", "Type", "Ask", "Bid"}, Rows: make([][]string, 0, len(ps))}
	for i, p := range ps {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(i + 1), p.PostalCode.String(), p.Unit.String(), p.Type.String(), p.Ask.String(), p.Bid.String(),
		})
	}
	return t
}

// MeetingTable lays out meetings in book order.
func MeetingTable(ms []model.Meeting) Table {
	t := Table{Title: "Meetings", Header: []string{"#", "Title", "Date", "Buyer", "Seller", "Type", "Postal Code"}, Rows: make([][]string, 0, len(ms))}
	for i, m := range ms {
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(i + 1), m.Title.String(), m.Date.String(), m.Buyer.String(), m.Seller.String(),
			m.Type.String(), m.PostalCode.String(),
		})
	}
	return t
}

// Tables returns the three book tables of s.
func Tables(s model.Snapshot) []Table {
	return []Table{ClientTable(s.Clients), PropertyTable(s.Properties), MeetingTable(s.Meetings)}
}
