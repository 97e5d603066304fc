// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
package storage

import (
	"fmt"
	"strings"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// STORED RECORD TYPES
// =============================================================================

// Stored records hold plain strings. Every field goes back through the model
// constructors on load.

type storedClient struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type storedProperty struct {
	PostalCode string `json:"postalCode"`
	Unit       string `json:"unit"`
	Type       string `json:"type"`
	Ask        string `json:"ask,omitempty"`
	Bid        string `json:"bid,omitempty"`
}

type storedMeeting struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Buyer      string `json:"buyer"`
	Seller     string `json:"seller"`
	Type       string `json:"type"`
	PostalCode string `json:"postalCode"`
}

// =============================================================================
// ENCODE
// =============================================================================

func fromClient(c model.Client) storedClient {
	return storedClient{
		Type:  strings.ToLower(c.Kind.String()),
		Name:  c.Name.String(),
		Phone: c.Phone.String(),
		Email: c.Email.String(),
	}
}

func fromProperty(p model.Property) storedProperty {
	return storedProperty{
		PostalCode: p.PostalCode.String(),
		Unit:       p.Unit.String(),
		Type:       p.Type.String(),
		Ask:        p.Ask.String(),
		Bid:        p.Bid.String(),
	}
}

func fromMeeting(m model.Meeting) storedMeeting {
	return storedMeeting{
		Title:      m.Title.String(),
		Date:       m.Date.String(),
		Buyer:      m.Buyer.String(),
		Seller:     m.Seller.String(),
		Type:       m.Type.String(),
		PostalCode: m.PostalCode.String(),
	}
}

// =============================================================================
// DECODE
// =============================================================================

func (s storedClient) toModel() (model.Client, error) {
	var c model.Client
	var err error
	if c.Kind, err = model.ParseClientKind(s.Type); err != nil {
		return c, err
	}
	if c.Name, err = model.NewName(s.Name); err != nil {
		return c, err
	}
	if c.Phone, err = model.NewPhone(s.Phone); err != nil {
		return c, err
	}
	if c.Email, err = model.NewEmail(s.Email); err != nil {
		return c, err
	}
	return c, nil
}

func (s storedProperty) toModel() (model.Property, error) {
	var p model.Property
	var err error
	if p.PostalCode, err = model.NewPostalCode(s.PostalCode); err != nil {
		return p, err
	}
	if p.Unit, err = model.NewUnit(s.Unit); err != nil {
		return p, err
	}
	if p.Type, err = model.ParsePropertyType(s.Type); err != nil {
		return p, err
	}
	if s.Ask != "" {
		if p.Ask, err = model.NewAsk(s.Ask); err != nil {
			return p, err
		}
	}
	if s.Bid != "" {
		if p.Bid, err = model.NewBid(s.Bid); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s storedMeeting) toModel() (model.Meeting, error) {
	var m model.Meeting
	var err error
	if m.Title, err = model.NewMeetingTitle(s.Title); err != nil {
		return m, err
	}
	if m.Date, err = model.NewMeetingDate(s.Date); err != nil {
		return m, err
	}
	if m.Buyer, err = model.NewName(s.Buyer); err != nil {
		return m, err
	}
	if m.Seller, err = model.NewName(s.Seller); err != nil {
		return m, err
	}
	if m.Type, err = model.ParsePropertyType(s.Type); err != nil {
		return m, err
	}
	if m.PostalCode, err = model.NewPostalCode(s.PostalCode); err != nil {
		return m, err
	}
	return m, nil
}

// decodeAll converts stored records into unique model records. The first bad
// record or identity collision fails the whole book.
func decodeAll[S interface{ toModel() (T, error) }, T model.Record[T]](stored []S) ([]T, error) {
	book := model.NewBook[T]()
	for i, s := range stored {
		rec, err := s.toModel()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if err := book.Add(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return book.Items(), nil
}

func encodeAll[T any, S any](records []T, encode func(T) S) []S {
	out := make([]S, 0, len(records))
	for _, r := range records {
		out = append(out, encode(r))
	}
	return out
}
