// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// =============================================================================
// CONSTRAINT MESSAGES
// =============================================================================

const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

	EmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	PostalCodeConstraints = "Postal Code numbers should only contain positive numbers, " +
		"and it should be exactly 6 digits long"

	UnitConstraints = "Unit numbers should be of the format FLOOR-UNIT using digits only, e.g. 11-11"

	TypeConstraints = "Property type should be one of: HDB, CONDO, LANDED"

	AskConstraints = "Ask price should only contain numbers, without decimals, signs or currency symbols"

	BidConstraints = "Bid price should only contain numbers, without decimals, signs or currency symbols"

	MatchingPriceConstraints = "Matching price should only contain numbers, " +
		"without decimals, signs or currency symbols"

	MeetingTitleConstraints = "Meeting titles should not be blank and should be at most 100 characters long"

	MeetingDateConstraints = "Meeting dates should be in the format YYYY-MM-DD and be a valid calendar date"
)

// MeetingDateLayout is the layout accepted for meeting dates.
const MeetingDateLayout = "2006-01-02"

const maxMeetingTitleRunes = 100

var (
	nameRegex       = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex      = regexp.MustCompile(`^\d{3,}$`)
	postalCodeRegex = regexp.MustCompile(`^\d{6}$`)
	unitRegex       = regexp.MustCompile(`^\d+-\d+$`)
	priceRegex      = regexp.MustCompile(`^\d+$`)
	dateRegex       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	emailRegex = regexp.MustCompile(
		`^[a-zA-Z0-9]+([+_.-][a-zA-Z0-9]+)*@([a-zA-Z0-9]+(-[a-zA-Z0-9]+)*\.)*[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`)
)

// =============================================================================
// CLIENT FIELDS
// =============================================================================

// Name is a client's display name.
type Name struct{ value string }

// NewName validates and wraps a client name.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegex.MatchString(s) {
		return Name{}, invalid("name", s, NameConstraints)
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// ContainsFold reports whether sub occurs in the name, ignoring case.
func (n Name) ContainsFold(sub string) bool {
	return strings.Contains(fold(n.value), fold(sub))
}

// HasPrefixFold reports whether the name starts with prefix, ignoring case.
func (n Name) HasPrefixFold(prefix string) bool {
	return strings.HasPrefix(fold(n.value), fold(prefix))
}

// Phone is a client's phone number and, together with the client kind, its identity.
type Phone struct{ value string }

// NewPhone validates and wraps a phone number.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, invalid("phone", s, PhoneConstraints)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Email is a client's email address.
type Email struct{ value string }

// NewEmail validates and wraps an email address.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, invalid("email", s, EmailConstraints)
	}
	// The last domain label must be at least two characters long.
	if last := s[strings.LastIndexAny(s, "@.")+1:]; len(last) < 2 {
		return Email{}, invalid("email", s, EmailConstraints)
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

// =============================================================================
// PROPERTY FIELDS
// =============================================================================

// PostalCode is a six digit postal code.
type PostalCode struct{ value string }

// NewPostalCode validates and wraps a postal code.
func NewPostalCode(s string) (PostalCode, error) {
	s = strings.TrimSpace(s)
	if !postalCodeRegex.MatchString(s) {
		return PostalCode{}, invalid("postal code", s, PostalCodeConstraints)
	}
	return PostalCode{value: s}, nil
}

func (p PostalCode) String() string { return p.value }

// Unit is a FLOOR-UNIT unit number such as 11-11.
type Unit struct{ value string }

// NewUnit validates and wraps a unit number.
func NewUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if !unitRegex.MatchString(s) {
		return Unit{}, invalid("unit", s, UnitConstraints)
	}
	return Unit{value: s}, nil
}

func (u Unit) String() string { return u.value }

// PropertyType is the kind of housing. The zero value means "unspecified".
type PropertyType string

const (
	TypeHDB    PropertyType = "HDB"
	TypeCondo  PropertyType = "CONDO"
	TypeLanded PropertyType = "LANDED"
)

// PropertyTypes lists every accepted property type in display order.
var PropertyTypes = []PropertyType{TypeHDB, TypeCondo, TypeLanded}

// ParsePropertyType accepts any letter case and returns the canonical upper-case type.
func ParsePropertyType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	for _, t := range PropertyTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", invalid("type", s, TypeConstraints)
}

func (t PropertyType) String() string { return string(t) }

// Price is a whole-number amount in dollars. The zero value means "not set".
// Ask, bid and matching prices share this type and differ only in their constraint message.
type Price struct{ value string }

// NewAsk validates an asking price.
func NewAsk(s string) (Price, error) { return newPrice("ask", s, AskConstraints) }

// NewBid validates a bid price.
func NewBid(s string) (Price, error) { return newPrice("bid", s, BidConstraints) }

// NewMatchingPrice validates a price bound used when filtering properties.
func NewMatchingPrice(s string) (Price, error) {
	return newPrice("matching price", s, MatchingPriceConstraints)
}

func newPrice(field, s, constraint string) (Price, error) {
	s = strings.TrimSpace(s)
	if !priceRegex.MatchString(s) {
		return Price{}, invalid(field, s, constraint)
	}
	return Price{value: s}, nil
}

func (p Price) String() string { return p.value }

// IsZero reports whether the price was never set.
func (p Price) IsZero() bool { return p.value == "" }

// Cmp compares two prices numerically and returns -1, 0 or +1.
// Digit strings of any length are compared without converting to an integer type.
func (p Price) Cmp(o Price) int {
	a := strings.TrimLeft(p.value, "0")
	b := strings.TrimLeft(o.value, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

// =============================================================================
// MEETING FIELDS
// =============================================================================

// MeetingTitle is the short title of a meeting.
type MeetingTitle struct{ value string }

// NewMeetingTitle validates and wraps a meeting title.
func NewMeetingTitle(s string) (MeetingTitle, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxMeetingTitleRunes {
		return MeetingTitle{}, invalid("meeting title", s, MeetingTitleConstraints)
	}
	return MeetingTitle{value: s}, nil
}

func (t MeetingTitle) String() string { return t.value }

// MeetingDate is a calendar day in YYYY-MM-DD form.
type MeetingDate struct{ value string }

// NewMeetingDate validates and wraps a meeting date.
func NewMeetingDate(s string) (MeetingDate, error) {
	s = strings.TrimSpace(s)
	if !dateRegex.MatchString(s) {
		return MeetingDate{}, invalid("meeting date", s, MeetingDateConstraints)
	}
	if _, err := time.Parse(MeetingDateLayout, s); err != nil {
		return MeetingDate{}, invalid("meeting date", s, MeetingDateConstraints)
	}
	return MeetingDate{value: s}, nil
}

func (d MeetingDate) String() string { return d.value }

// Time returns the date at midnight UTC.
func (d MeetingDate) Time() time.Time {
	t, _ := time.Parse(MeetingDateLayout, d.value)
	return t
}

// =============================================================================
// HELPERS
// =============================================================================

// fold returns the case-folded form of s for caseless comparison.
// A fresh Caser is used per call because Casers keep state.
func fold(s string) string {
	return cases.Fold().String(s)
}
