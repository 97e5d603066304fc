// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import (
	"fmt"
	"strings"
)

// Property is a listed unit. PostalCode and Unit together identify it.
// Ask and Bid are optional and left at their zero value when unknown.
type Property struct {
	PostalCode PostalCode
	Unit       Unit
	Type       PropertyType
	Ask        Price
	Bid        Price
}

// SameAs reports whether o has the same postal code and unit.
func (p Property) SameAs(o Property) bool {
	return p.PostalCode == o.PostalCode && p.Unit == o.Unit
}

// Equal reports whether all fields match.
func (p Property) Equal(o Property) bool {
	return p == o
}

func (p Property) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Postal Code: %s; Unit: %s; Type: %s", p.PostalCode, p.Unit, p.Type)
	if !p.Ask.IsZero() {
		fmt.Fprintf(&b, "; Ask: %s", p.Ask)
	}
	if !p.Bid.IsZero() {
		fmt.Fprintf(&b, "; Bid: %s", p.Bid)
	}
	return b.String()
}

// =============================================================================
// PROPERTY PREDICATES
// =============================================================================

// AllProperties matches every property.
func AllProperties(Property) bool { return true }

// PropertyCriteria selects properties by type and asking price.
// Zero fields are unconstrained. A property with no ask never satisfies a price bound.
type PropertyCriteria struct {
	Type PropertyType
	Max  Price
	Min  Price
}

// IsEmpty reports whether no criterion is set.
func (pc PropertyCriteria) IsEmpty() bool {
	return pc.Type == "" && pc.Max.IsZero() && pc.Min.IsZero()
}

// Match reports whether p satisfies every criterion that is set.
func (pc PropertyCriteria) Match(p Property) bool {
	if pc.Type != "" && p.Type != pc.Type {
		return false
	}
	if !pc.Max.IsZero() && (p.Ask.IsZero() || p.Ask.Cmp(pc.Max) > 0) {
		return false
	}
	if !pc.Min.IsZero() && (p.Ask.IsZero() || p.Ask.Cmp(pc.Min) < 0) {
		return false
	}
	return true
}

func (pc PropertyCriteria) String() string {
	var parts []string
	if pc.Type != "" {
		parts = append(parts, "type="+pc.Type.String())
	}
	if !pc.Max.IsZero() {
		parts = append(parts, "lte="+pc.Max.String())
	}
	if !pc.Min.IsZero() {
		parts = append(parts, "gte="+pc.Min.String())
	}
	return strings.Join(parts, ", ")
}
