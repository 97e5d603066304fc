// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import "fmt"

// Meeting is an appointment between a buyer, a seller and a property.
// Buyer and Seller hold the names as typed; they are matched against the
// client book when the meeting is added, not stored as links.
type Meeting struct {
	Title      MeetingTitle
	Date       MeetingDate
	Buyer      Name
	Seller     Name
	Type       PropertyType
	PostalCode PostalCode
}

// SameAs reports whether o has the same title and date.
func (m Meeting) SameAs(o Meeting) bool {
	return m.Title == o.Title && m.Date == o.Date
}

// Equal reports whether all fields match.
func (m Meeting) Equal(o Meeting) bool {
	return m == o
}

func (m Meeting) String() string {
	return fmt.Sprintf("%s on %s; Buyer: %s; Seller: %s; Property: %s %s",
		m.Title, m.Date, m.Buyer, m.Seller, m.Type, m.PostalCode)
}

// AllMeetings matches every meeting.
func AllMeetings(Meeting) bool { return true }
