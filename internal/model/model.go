// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import (
	"log/slog"
)

// =============================================================================
// DISPLAY MODE
// =============================================================================

// DisplayMode selects which list the presentation layer shows.
type DisplayMode int

const (
	ShowingClients DisplayMode = iota
	ShowingProperties
)

func (d DisplayMode) String() string {
	if d == ShowingProperties {
		return "properties"
	}
	return "clients"
}

// =============================================================================
// SAVER
// =============================================================================

// Saver persists whole books. Storage backends implement it.
type Saver interface {
	SaveClients(clients []Client) error
	SaveProperties(properties []Property) error
	SaveMeetings(meetings []Meeting) error
}

// Snapshot is a point-in-time copy of every book.
type Snapshot struct {
	Clients    []Client
	Properties []Property
	Meetings   []Meeting
}

// =============================================================================
// MODEL
// =============================================================================

// Model owns every book, the active filters and the display mode.
//
// Each mutating call writes the affected book through the Saver. A failed
// write is logged and recorded in LastPersistError; the in-memory change is
// kept and the call still succeeds.
//
// Model is not safe for concurrent use; commands run one at a time.
type Model struct {
	clients    *Book[Client]
	properties *Book[Property]
	meetings   *Book[Meeting]

	display DisplayMode

	saver      Saver
	logger     *slog.Logger
	persistErr error
}

// New returns an empty model. saver may be nil for an in-memory model,
// and logger defaults to slog.Default().
func New(saver Saver, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		clients:    NewBook[Client](),
		properties: NewBook[Property](),
		meetings:   NewBook[Meeting](),
		display:    ShowingClients,
		saver:      saver,
		logger:     logger,
	}
}

// =============================================================================
// CLIENTS
// =============================================================================

func (m *Model) HasClient(c Client) bool { return m.clients.Contains(c) }

// AddClient adds c and clears the client filter so the new record is visible.
func (m *Model) AddClient(c Client) error {
	if err := m.clients.Add(c); err != nil {
		return err
	}
	m.clients.SetPredicate(nil)
	m.saveClients()
	return nil
}

func (m *Model) DeleteClient(c Client) error {
	if err := m.clients.Remove(c); err != nil {
		return err
	}
	m.saveClients()
	return nil
}

// FilteredClients returns the clients matching the current client filter.
func (m *Model) FilteredClients() []Client { return m.clients.Filtered() }

// SetClientFilter replaces the client filter. nil shows every client.
func (m *Model) SetClientFilter(pred func(Client) bool) { m.clients.SetPredicate(pred) }

// ResetClients replaces the client book without persisting it.
func (m *Model) ResetClients(cs []Client) error { return m.clients.Reset(cs) }

// =============================================================================
// PROPERTIES
// =============================================================================

func (m *Model) HasProperty(p Property) bool { return m.properties.Contains(p) }

func (m *Model) AddProperty(p Property) error {
	if err := m.properties.Add(p); err != nil {
		return err
	}
	m.saveProperties()
	return nil
}

func (m *Model) DeleteProperty(p Property) error {
	if err := m.properties.Remove(p); err != nil {
		return err
	}
	m.saveProperties()
	return nil
}

// FilteredProperties returns the properties matching the current property filter.
func (m *Model) FilteredProperties() []Property { return m.properties.Filtered() }

// SetPropertyFilter replaces the property filter. nil shows every property.
func (m *Model) SetPropertyFilter(pred func(Property) bool) { m.properties.SetPredicate(pred) }

// ResetProperties replaces the property book without persisting it.
func (m *Model) ResetProperties(ps []Property) error { return m.properties.Reset(ps) }

// =============================================================================
// MEETINGS
// =============================================================================

func (m *Model) HasMeeting(mt Meeting) bool { return m.meetings.Contains(mt) }

func (m *Model) AddMeeting(mt Meeting) error {
	if err := m.meetings.Add(mt); err != nil {
		return err
	}
	m.saveMeetings()
	return nil
}

func (m *Model) DeleteMeeting(mt Meeting) error {
	if err := m.meetings.Remove(mt); err != nil {
		return err
	}
	m.saveMeetings()
	return nil
}

// FilteredMeetings returns the meetings matching the current meeting filter.
func (m *Model) FilteredMeetings() []Meeting { return m.meetings.Filtered() }

// SetMeetingFilter replaces the meeting filter. nil shows every meeting.
func (m *Model) SetMeetingFilter(pred func(Meeting) bool) { m.meetings.SetPredicate(pred) }

// ResetMeetings replaces the meeting book without persisting it.
func (m *Model) ResetMeetings(ms []Meeting) error { return m.meetings.Reset(ms) }

// =============================================================================
// BULK OPERATIONS
// =============================================================================

// Clear empties every book, resets all filters and persists the empty books.
func (m *Model) Clear() {
	m.clients = NewBook[Client]()
	m.properties = NewBook[Property]()
	m.meetings = NewBook[Meeting]()

	// Keep the first failure; a later book saving cleanly must not hide it.
	var first error
	for _, err := range []error{m.saveClients(), m.saveProperties(), m.saveMeetings()} {
		if first == nil {
			first = err
		}
	}
	m.persistErr = first
}

// Snapshot copies every book, ignoring filters.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Clients:    m.clients.Items(),
		Properties: m.properties.Items(),
		Meetings:   m.meetings.Items(),
	}
}

// =============================================================================
// DISPLAY MODE
// =============================================================================

func (m *Model) Display() DisplayMode { return m.display }

func (m *Model) SetDisplay(d DisplayMode) { m.display = d }

// =============================================================================
// PERSISTENCE
// =============================================================================

// LastPersistError returns the error from the most recent write, or nil if it succeeded.
func (m *Model) LastPersistError() error { return m.persistErr }

func (m *Model) saveClients() error {
	if m.saver == nil {
		return nil
	}
	return m.recordPersist("clients", m.saver.SaveClients(m.clients.Items()))
}

func (m *Model) saveProperties() error {
	if m.saver == nil {
		return nil
	}
	return m.recordPersist("properties", m.saver.SaveProperties(m.properties.Items()))
}

func (m *Model) saveMeetings() error {
	if m.saver == nil {
		return nil
	}
	return m.recordPersist("meetings", m.saver.SaveMeetings(m.meetings.Items()))
}

func (m *Model) recordPersist(book string, err error) error {
	m.persistErr = err
	if err != nil {
		m.logger.Warn("persist failed", "book", book, "error", err)
	}
	return err
}
