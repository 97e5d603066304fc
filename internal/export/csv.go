// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter writes one CSV section per book. Each section starts with a
// single-cell title row followed by the header; sections are separated by a
// blank line.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CSVExporter{options: opts}
}

// Export converts a snapshot to CSV. The row number column is dropped.
func (e *CSVExporter) Export(s model.Snapshot) ([]byte, error) {
	var buf bytes.Buffer

	for i, t := range Tables(s) {
		if i > 0 {
			buf.WriteString("\n")
		}
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{t.Title}); err != nil {
			return nil, err
		}
		if err := w.Write(t.Header[1:]); err != nil {
			return nil, err
		}
		for _, row := range t.Rows {
			if err := w.Write(row[1:]); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("write %s: %w", t.Title, err)
		}
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
