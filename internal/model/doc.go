// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
//
// Every field is a self-validating value object built with a NewX
// constructor; invalid input yields a *ValidationError whose message is the
// field's constraint text. Records are kept in generic books that reject
// duplicates by identity and expose a filtered view driven by a predicate.
//
// # Key Types
//
//   - Client: Buyer or Seller (tagged by Kind), identified by kind and phone
//   - Property: identified by postal code and unit
//   - Meeting: identified by title and date
//   - Book: unique-by-identity collection with a filtered view
//   - Model: owns the books, filters, display mode and a Saver
//
// # Usage
//
//	m := model.New(store, logger)
//	name, err := model.NewName("John Tan")
//	...
//	if err := m.AddClient(model.NewBuyer(name, phone, email)); errors.Is(err, model.ErrDuplicate) {
//	    // already known
//	}
//	m.SetClientFilter(model.BuyersOnly)
//	for _, c := range m.FilteredClients() {
//	    fmt.Println(c)
//	}
package model
