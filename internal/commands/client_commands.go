// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"strings"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// USAGE
// =============================================================================

const (
	addBuyerUsage = "addbuyer: Adds a buyer to the client book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL\n" +
		"Example: addbuyer n/John Tan p/91234567 e/john@example.com"

	addSellerUsage = "addseller: Adds a seller to the client book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL\n" +
		"Example: addseller n/Mary Lim p/98765432 e/mary@example.com"

	deleteBuyerUsage = "deletebuyer: Deletes the buyer with the given phone number.\n" +
		"Parameters: p/PHONE\n" +
		"Example: deletebuyer p/91234567"

	deleteSellerUsage = "deleteseller: Deletes the seller with the given phone number.\n" +
		"Parameters: p/PHONE\n" +
		"Example: deleteseller p/98765432"
)

// =============================================================================
// ADD CLIENT
// =============================================================================

// AddClientCommand adds a buyer or a seller.
type AddClientCommand struct {
	Client model.Client
}

func (c AddClientCommand) Word() string {
	if c.Client.IsSeller() {
		return "addseller"
	}
	return "addbuyer"
}

func (c AddClientCommand) Execute(m *model.Model) (Result, error) {
	kind := strings.ToLower(c.Client.Kind.String())
	if m.HasClient(c.Client) {
		return Result{}, commandError(model.ErrDuplicate, "This %s already exists in the client book", kind)
	}
	if err := m.AddClient(c.Client); err != nil {
		return Result{}, commandError(err, "This %s already exists in the client book", kind)
	}
	m.SetDisplay(model.ShowingClients)
	return feedback("New " + kind + " added: " + c.Client.Details()), nil
}

func parseAddClient(kind model.ClientKind, usage string) ParseFunc {
	return func(args string) (Command, error) {
		am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail)
		if !am.HasAll(PrefixName, PrefixPhone, PrefixEmail) || am.Preamble() != "" {
			return nil, formatError(usage)
		}
		if err := am.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail); err != nil {
			return nil, err
		}

		name, err := model.NewName(valueOf(am, PrefixName))
		if err != nil {
			return nil, valueError(usage, err)
		}
		phone, err := model.NewPhone(valueOf(am, PrefixPhone))
		if err != nil {
			return nil, valueError(usage, err)
		}
		email, err := model.NewEmail(valueOf(am, PrefixEmail))
		if err != nil {
			return nil, valueError(usage, err)
		}

		return AddClientCommand{Client: model.Client{Kind: kind, Name: name, Phone: phone, Email: email}}, nil
	}
}

// =============================================================================
// DELETE CLIENT
// =============================================================================

// DeleteClientCommand deletes the first visible client of Kind with Phone.
type DeleteClientCommand struct {
	Kind  model.ClientKind
	Phone model.Phone
}

func (c DeleteClientCommand) Word() string {
	if c.Kind == model.Seller {
		return "deleteseller"
	}
	return "deletebuyer"
}

func (c DeleteClientCommand) Execute(m *model.Model) (Result, error) {
	notFound := MessageBuyerNotFound
	if c.Kind == model.Seller {
		notFound = MessageSellerNotFound
	}

	for _, client := range m.FilteredClients() {
		if client.Kind != c.Kind || client.Phone != c.Phone {
			continue
		}
		if err := m.DeleteClient(client); err != nil {
			return Result{}, &CommandError{Message: notFound, Err: err}
		}
		return feedback("Deleted " + c.Kind.String() + ": " + client.Details()), nil
	}
	return Result{}, &CommandError{Message: notFound, Err: model.ErrNotFound}
}

func parseDeleteClient(kind model.ClientKind, usage string) ParseFunc {
	return func(args string) (Command, error) {
		am := Tokenize(args, PrefixPhone)
		if err := am.VerifyNoDuplicatePrefixesFor(PrefixPhone); err != nil {
			return nil, err
		}
		if hasExcessTokens(args, 1) || !am.Has(PrefixPhone) || am.Preamble() != "" {
			return nil, formatError(usage)
		}

		phone, err := model.NewPhone(valueOf(am, PrefixPhone))
		if err != nil {
			return nil, valueError(usage, err)
		}
		return DeleteClientCommand{Kind: kind, Phone: phone}, nil
	}
}

// valueOf returns the last value for p, or "" when p is absent.
func valueOf(am *ArgumentMultimap, p Prefix) string {
	v, _ := am.Value(p)
	return v
}
