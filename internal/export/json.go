// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

type jsonClient struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type jsonProperty struct {
	PostalCode string `json:"postalCode"`
	Unit       string `json:"unit"`
	Type       string `json:"type"`
	Ask        string `json:"ask,omitempty"`
	Bid        string `json:"bid,omitempty"`
}

type jsonMeeting struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Buyer      string `json:"buyer"`
	Seller     string `json:"seller"`
	Type       string `json:"type"`
	PostalCode string `json:"postalCode"`
}

type jsonDocument struct {
	ExportedAt string         `json:"exported_at"`
	Clients    []jsonClient   `json:"clients"`
	Properties []jsonProperty `json:"properties"`
	Meetings   []jsonMeeting  `json:"meetings"`
}

// JSONExporter exports every book into one JSON document. Field names match
// the JSON book files.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// Export converts a snapshot to indented JSON.
func (e *JSONExporter) Export(s model.Snapshot) ([]byte, error) {
	doc := jsonDocument{
		ExportedAt: e.options.now().Format(time.RFC3339),
		Clients:    make([]jsonClient, 0, len(s.Clients)),
		Properties: make([]jsonProperty, 0, len(s.Properties)),
		Meetings:   make([]jsonMeeting, 0, len(s.Meetings)),
	}
	for _, c := range s.Clients {
		kind := "buyer"
		if c.IsSeller() {
			kind = "seller"
		}
		doc.Clients = append(doc.Clients, jsonClient{
			Type: kind, Name: c.Name.String(), Phone: c.Phone.String(), Email: c.Email.String(),
		})
	}
	for _, p := range s.Properties {
		doc.Properties = append(doc.Properties, jsonProperty{
			PostalCode: p.PostalCode.String(), Unit: p.Unit.String(), Type: p.Type.String(),
			Ask: p.Ask.String(), Bid: p.Bid.String(),
		})
	}
	for _, m := range s.Meetings {
		doc.Meetings = append(doc.Meetings, jsonMeeting{
			Title: m.Title.String(), Date: m.Date.String(), Buyer: m.Buyer.String(), Seller: m.Seller.String(),
			Type: m.Type.String(), PostalCode: m.PostalCode.String(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
