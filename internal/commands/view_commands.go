// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"fmt"
	"strings"

	"github.com/jeranaias/propdesk/internal/model"
)

const (
	listUsage = "list: Lists all records of the given kind.\n" +
		"Parameters: k/KEY (one of buyers, sellers, clients, properties)\n" +
		"Example: list k/buyers"

	filterClientUsage = "filterclient: Lists clients whose name starts with the given text, ignoring case.\n" +
		"Parameters: n/NAME\n" +
		"Example: filterclient n/Jo"

	filterPropertyUsage = "filterproperty: Lists properties matching every given criterion.\n" +
		"Parameters: [t/TYPE] [lte/MAX_ASK] [gte/MIN_ASK] (at least one)\n" +
		"Example: filterproperty t/HDB lte/500000"
)

// =============================================================================
// LIST
// =============================================================================

// ListKey names what `list` shows.
type ListKey string

const (
	ListBuyers     ListKey = "buyers"
	ListSellers    ListKey = "sellers"
	ListClients    ListKey = "clients"
	ListProperties ListKey = "properties"
)

// ListKeys are the accepted keys, in help order.
var ListKeys = []ListKey{ListBuyers, ListSellers, ListClients, ListProperties}

// ListCommand shows every record of one kind.
type ListCommand struct {
	Key ListKey
}

func (ListCommand) Word() string { return "list" }

func (c ListCommand) Execute(m *model.Model) (Result, error) {
	switch c.Key {
	case ListBuyers:
		m.SetClientFilter(model.BuyersOnly)
		m.SetDisplay(model.ShowingClients)
	case ListSellers:
		m.SetClientFilter(model.SellersOnly)
		m.SetDisplay(model.ShowingClients)
	case ListClients:
		m.SetClientFilter(nil)
		m.SetDisplay(model.ShowingClients)
	case ListProperties:
		m.SetPropertyFilter(nil)
		m.SetDisplay(model.ShowingProperties)
	default:
		return Result{}, &CommandError{Message: fmt.Sprintf("Cannot list %q", c.Key)}
	}
	return feedback("Listed all " + string(c.Key)), nil
}

func parseList(args string) (Command, error) {
	am := Tokenize(args, PrefixKey)
	if !am.Has(PrefixKey) || am.Preamble() != "" {
		return nil, formatError(listUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixKey); err != nil {
		return nil, err
	}

	key := ListKey(strings.ToLower(valueOf(am, PrefixKey)))
	for _, k := range ListKeys {
		if k == key {
			return ListCommand{Key: key}, nil
		}
	}
	return nil, formatError(listUsage)
}

// =============================================================================
// FILTER CLIENT
// =============================================================================

// FilterClientCommand shows the clients whose name starts with Prefix.
type FilterClientCommand struct {
	Prefix model.Name
}

func (FilterClientCommand) Word() string { return "filterclient" }

func (c FilterClientCommand) Execute(m *model.Model) (Result, error) {
	m.SetClientFilter(model.NameStartsWith(c.Prefix.String()))
	m.SetDisplay(model.ShowingClients)
	n := len(m.FilteredClients())
	return feedback(fmt.Sprintf("Listed all clients with name starting with: %s (%d found)", c.Prefix, n)), nil
}

func parseFilterClient(args string) (Command, error) {
	am := Tokenize(args, PrefixName)
	if !am.Has(PrefixName) || am.Preamble() != "" {
		return nil, formatError(filterClientUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixName); err != nil {
		return nil, err
	}
	name, err := model.NewName(valueOf(am, PrefixName))
	if err != nil {
		return nil, valueError(filterClientUsage, err)
	}
	return FilterClientCommand{Prefix: name}, nil
}

// =============================================================================
// FILTER PROPERTY
// =============================================================================

// FilterPropertyCommand shows the properties matching Criteria.
type FilterPropertyCommand struct {
	Criteria model.PropertyCriteria
}

func (FilterPropertyCommand) Word() string { return "filterproperty" }

func (c FilterPropertyCommand) Execute(m *model.Model) (Result, error) {
	m.SetPropertyFilter(c.Criteria.Match)
	m.SetDisplay(model.ShowingProperties)
	n := len(m.FilteredProperties())
	return feedback(fmt.Sprintf("Listed %d properties matching: %s", n, c.Criteria)), nil
}

func parseFilterProperty(args string) (Command, error) {
	all := []Prefix{PrefixType, PrefixMaxPrice, PrefixMinPrice}
	am := Tokenize(args, all...)
	if !(am.Has(PrefixType) || am.Has(PrefixMaxPrice) || am.Has(PrefixMinPrice)) || am.Preamble() != "" {
		return nil, formatError(filterPropertyUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(all...); err != nil {
		return nil, err
	}

	var crit model.PropertyCriteria
	var err error
	if v, ok := am.Value(PrefixType); ok {
		if crit.Type, err = model.ParsePropertyType(v); err != nil {
			return nil, valueError(filterPropertyUsage, err)
		}
	}
	if v, ok := am.Value(PrefixMaxPrice); ok {
		if crit.Max, err = model.NewMatchingPrice(v); err != nil {
			return nil, valueError(filterPropertyUsage, err)
		}
	}
	if v, ok := am.Value(PrefixMinPrice); ok {
		if crit.Min, err = model.NewMatchingPrice(v); err != nil {
			return nil, valueError(filterPropertyUsage, err)
		}
	}
	return FilterPropertyCommand{Criteria: crit}, nil
}
