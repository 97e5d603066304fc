// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes snapshots of the propdesk books to files.
//
// # Formats
//
//   - Markdown: a heading, optional metadata and one aligned table per book
//   - JSON: one document holding every book plus "exported_at"
//   - CSV: one section per book, separated by blank lines
//
// # Usage
//
//	exporter, err := export.ForFormat("markdown", nil)
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(m.Snapshot(), exporter, &export.Options{OutputDir: "."})
package export
