// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/propdesk/internal/model"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var fixedNow = func() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

func buyerOnly() model.Snapshot {
	return model.Snapshot{
		Clients: []model.Client{
			model.NewBuyer(must(model.NewName("John Tan")), must(model.NewPhone("91234567")), must(model.NewEmail("john@example.com"))),
		},
	}
}

func fullSnapshot() model.Snapshot {
	s := buyerOnly()
	s.Clients = append(s.Clients,
		model.NewSeller(must(model.NewName("Mary Lim")), must(model.NewPhone("98765432")), must(model.NewEmail("mary@example.com"))))
	s.Properties = []model.Property{{
		PostalCode: must(model.NewPostalCode("123456")),
		Unit:       must(model.NewUnit("11-11")),
		Type:       model.TypeHDB,
		Ask:        must(model.NewAsk("500000")),
	}}
	s.Meetings = []model.Meeting{{
		Title:      must(model.NewMeetingTitle("Viewing")),
		Date:       must(model.NewMeetingDate("2024-05-01")),
		Buyer:      must(model.NewName("John")),
		Seller:     must(model.NewName("Mary")),
		Type:       model.TypeHDB,
		PostalCode: must(model.NewPostalCode("123456")),
	}}
	return s
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"markdown", ".md"},
		{"MD", ".md"},
		{"json", ".json"},
		{" csv ", ".csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ForFormat(tt.name, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, e.FileExtension())
			assert.NotEmpty(t, e.MimeType())
		})
	}

	_, err := ForFormat("html", nil)
	assert.Error(t, err)
}

func TestMarkdownExporter(t *testing.T) {
	e := NewMarkdownExporter(&Options{Now: fixedNow})
	out, err := e.Export(buyerOnly())
	require.NoError(t, err)

	want := "# propdesk export\n\n" +
		"## Clients\n\n" +
		"| # | Type  | Name     | Phone    | Email            |\n" +
		"|---|-------|----------|----------|------------------|\n" +
		"| 1 | Buyer | John Tan | 91234567 | john@example.com |\n" +
		"\n## Properties\n\n_No properties._\n" +
		"\n## Meetings\n\n_No meetings._\n"
	assert.Equal(t, want, string(out))
}

func TestMarkdownExporter_Metadata(t *testing.T) {
	e := NewMarkdownExporter(&Options{Now: fixedNow, IncludeMetadata: true})
	out, err := e.Export(fullSnapshot())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "- **Exported**: 2025-03-14T09:30:00Z\n")
	assert.Contains(t, s, "- **Clients**: 2\n")
	assert.Contains(t, s, "| 1 | Viewing | 2024-05-01 |")
	assert.Contains(t, s, "| 500000 |     |", "blank bid is padded")
}

func TestJSONExporter(t *testing.T) {
	out, err := NewJSONExporter(&Options{Now: fixedNow}).Export(fullSnapshot())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "2025-03-14T09:30:00Z", doc["exported_at"])
	assert.Len(t, doc["clients"], 2)

	props := doc["properties"].([]any)
	require.Len(t, props, 1)
	p := props[0].(map[string]any)
	assert.Equal(t, "500000", p["ask"])
	_, hasBid := p["bid"]
	assert.False(t, hasBid, "unset bid is omitted")

	empty, err := NewJSONExporter(nil).Export(model.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, string(empty), `"meetings": []`)
}

func TestCSVExporter(t *testing.T) {
	out, err := NewCSVExporter(nil).Export(buyerOnly())
	require.NoError(t, err)

	want := "Clients\n" +
		"Type,Name,Phone,Email\n" +
		"Buyer,John Tan,91234567,john@example.com\n" +
		"\n" +
		"Properties\n" +
		"Postal Code,Unit,Type,Ask,Bid\n" +
		"\n" +
		"Meetings\n" +
		"Title,Date,Buyer,Seller,Type,Postal Code\n"
	assert.Equal(t, want, string(out))
}

func TestExportToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	opts := &Options{OutputDir: dir, Now: fixedNow}

	path, err := ExportToFile(fullSnapshot(), NewCSVExporter(opts), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "propdesk-export-20250314_093000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Clients\n"))
}

func TestTables(t *testing.T) {
	tables := Tables(fullSnapshot())
	require.Len(t, tables, 3)

	assert.Equal(t, "Clients", tables[0].Title)
	assert.Equal(t, []string{"2", "Seller", "Mary Lim", "98765432", "mary@example.com"}, tables[0].Rows[1])
	assert.Equal(t, []string{"1", "123456", "11-11", "HDB", "500000", ""}, tables[1].Rows[0])
	assert.Len(t, tables[2].Header, len(tables[2].Rows[0]))
}
