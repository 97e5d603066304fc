// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"github.com/jeranaias/propdesk/internal/model"
)

const (
	addPropertyUsage = "addproperty: Adds a property to the property book.\n" +
		"Parameters: pc/POSTAL_CODE u/UNIT t/TYPE [a/ASK] [bd/BID]\n" +
		"Example: addproperty pc/123456 u/11-11 t/HDB a/500000 bd/480000"

	deletePropertyUsage = "deleteproperty: Deletes the property with the given postal code and unit.\n" +
		"Parameters: pc/POSTAL_CODE u/UNIT\n" +
		"Example: deleteproperty pc/123456 u/11-11"
)

// =============================================================================
// ADD PROPERTY
// =============================================================================

// AddPropertyCommand adds a property.
type AddPropertyCommand struct {
	Property model.Property
}

func (AddPropertyCommand) Word() string { return "addproperty" }

func (c AddPropertyCommand) Execute(m *model.Model) (Result, error) {
	if m.HasProperty(c.Property) {
		return Result{}, &CommandError{Message: MessageDuplicateProperty, Err: model.ErrDuplicate}
	}
	if err := m.AddProperty(c.Property); err != nil {
		return Result{}, &CommandError{Message: MessageDuplicateProperty, Err: err}
	}
	m.SetDisplay(model.ShowingProperties)
	return feedback("New property added: " + c.Property.String()), nil
}

func parseAddProperty(args string) (Command, error) {
	all := []Prefix{PrefixPostalCode, PrefixUnit, PrefixType, PrefixAsk, PrefixBid}
	am := Tokenize(args, all...)
	if !am.HasAll(PrefixPostalCode, PrefixUnit, PrefixType) || am.Preamble() != "" {
		return nil, formatError(addPropertyUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(all...); err != nil {
		return nil, err
	}

	var p model.Property
	var err error
	if p.PostalCode, err = model.NewPostalCode(valueOf(am, PrefixPostalCode)); err != nil {
		return nil, valueError(addPropertyUsage, err)
	}
	if p.Unit, err = model.NewUnit(valueOf(am, PrefixUnit)); err != nil {
		return nil, valueError(addPropertyUsage, err)
	}
	if p.Type, err = model.ParsePropertyType(valueOf(am, PrefixType)); err != nil {
		return nil, valueError(addPropertyUsage, err)
	}
	if v, ok := am.Value(PrefixAsk); ok {
		if p.Ask, err = model.NewAsk(v); err != nil {
			return nil, valueError(addPropertyUsage, err)
		}
	}
	if v, ok := am.Value(PrefixBid); ok {
		if p.Bid, err = model.NewBid(v); err != nil {
			return nil, valueError(addPropertyUsage, err)
		}
	}
	return AddPropertyCommand{Property: p}, nil
}

// =============================================================================
// DELETE PROPERTY
// =============================================================================

// DeletePropertyCommand deletes the visible property at PostalCode and Unit.
type DeletePropertyCommand struct {
	PostalCode model.PostalCode
	Unit       model.Unit
}

func (DeletePropertyCommand) Word() string { return "deleteproperty" }

func (c DeletePropertyCommand) Execute(m *model.Model) (Result, error) {
	for _, p := range m.FilteredProperties() {
		if p.PostalCode != c.PostalCode || p.Unit != c.Unit {
			continue
		}
		if err := m.DeleteProperty(p); err != nil {
			return Result{}, &CommandError{Message: MessagePropertyNotFound, Err: err}
		}
		return feedback("Deleted Property: " + p.String()), nil
	}
	return Result{}, &CommandError{Message: MessagePropertyNotFound, Err: model.ErrNotFound}
}

func parseDeleteProperty(args string) (Command, error) {
	am := Tokenize(args, PrefixPostalCode, PrefixUnit)
	if !am.HasAll(PrefixPostalCode, PrefixUnit) || am.Preamble() != "" {
		return nil, formatError(deletePropertyUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixPostalCode, PrefixUnit); err != nil {
		return nil, err
	}

	pc, err := model.NewPostalCode(valueOf(am, PrefixPostalCode))
	if err != nil {
		return nil, valueError(deletePropertyUsage, err)
	}
	unit, err := model.NewUnit(valueOf(am, PrefixUnit))
	if err != nil {
		return nil, valueError(deletePropertyUsage, err)
	}
	return DeletePropertyCommand{PostalCode: pc, Unit: unit}, nil
}
