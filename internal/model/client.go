// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// CLIENT KIND
// =============================================================================

// ClientKind tags a Client as a buyer or a seller.
type ClientKind int

const (
	Buyer ClientKind = iota + 1
	Seller
)

func (k ClientKind) String() string {
	switch k {
	case Buyer:
		return "Buyer"
	case Seller:
		return "Seller"
	default:
		return "Unknown"
	}
}

// ParseClientKind accepts "buyer" or "seller" in any case.
func ParseClientKind(s string) (ClientKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buyer":
		return Buyer, nil
	case "seller":
		return Seller, nil
	}
	return 0, fmt.Errorf("unknown client kind %q", s)
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a buyer or a seller. The Kind field is part of both identity and
// equality, so a buyer and a seller sharing a phone number are different records.
type Client struct {
	Kind  ClientKind
	Name  Name
	Phone Phone
	Email Email
}

// NewBuyer returns a buyer client.
func NewBuyer(name Name, phone Phone, email Email) Client {
	return Client{Kind: Buyer, Name: name, Phone: phone, Email: email}
}

// NewSeller returns a seller client.
func NewSeller(name Name, phone Phone, email Email) Client {
	return Client{Kind: Seller, Name: name, Phone: phone, Email: email}
}

func (c Client) IsBuyer() bool  { return c.Kind == Buyer }
func (c Client) IsSeller() bool { return c.Kind == Seller }

// SameAs reports whether o is the same client: same kind and same phone number.
func (c Client) SameAs(o Client) bool {
	return c.Kind == o.Kind && c.Phone == o.Phone
}

// Equal reports whether every field of o, including the kind, matches c.
func (c Client) Equal(o Client) bool {
	return c == o
}

func (c Client) String() string {
	return c.Kind.String() + ": " + c.Details()
}

// Details formats the client without its kind.
func (c Client) Details() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s", c.Name, c.Phone, c.Email)
}

// =============================================================================
// CLIENT PREDICATES
// =============================================================================

// AllClients matches every client.
func AllClients(Client) bool { return true }

// BuyersOnly matches buyers.
func BuyersOnly(c Client) bool { return c.IsBuyer() }

// SellersOnly matches sellers.
func SellersOnly(c Client) bool { return c.IsSeller() }

// NameStartsWith matches clients whose name begins with prefix, ignoring case.
func NameStartsWith(prefix string) func(Client) bool {
	return func(c Client) bool {
		return c.Name.HasPrefixFold(prefix)
	}
}
