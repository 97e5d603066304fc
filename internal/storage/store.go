// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// BOOKS
// =============================================================================

// Book names one of the three persisted collections.
type Book string

const (
	BookClients    Book = "clients"
	BookProperties Book = "properties"
	BookMeetings   Book = "meetings"
)

// Books lists every book in load order.
var Books = []Book{BookClients, BookProperties, BookMeetings}

// FileName is the JSON file holding the book, e.g. "clientbook.json".
func (b Book) FileName() string {
	switch b {
	case BookClients:
		return "clientbook.json"
	case BookProperties:
		return "propertybook.json"
	case BookMeetings:
		return "meetingbook.json"
	}
	return string(b) + ".json"
}

func bookForFile(name string) (Book, bool) {
	for _, b := range Books {
		if b.FileName() == name {
			return b, true
		}
	}
	return "", false
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrBookNotFound is returned when a book has never been saved.
	ErrBookNotFound = errors.New("book not found")

	// ErrCorruptBook is matched by every *BookError.
	ErrCorruptBook = errors.New("corrupt book")
)

// BookError reports a book that exists but cannot be turned back into records.
type BookError struct {
	Book   Book
	Source string
	Err    error
}

func (e *BookError) Error() string {
	return fmt.Sprintf("%s book in %s is corrupt: %v", e.Book, e.Source, e.Err)
}

func (e *BookError) Is(target error) bool {
	return target == ErrCorruptBook
}

func (e *BookError) Unwrap() error {
	return e.Err
}

// =============================================================================
// STORE
// =============================================================================

// Store loads and saves whole books. Every Store is a model.Saver.
type Store interface {
	model.Saver

	LoadClients() ([]model.Client, error)
	LoadProperties() ([]model.Property, error)
	LoadMeetings() ([]model.Meeting, error)

	Close() error
}

// LoadInto fills m from s. A missing or unreadable book leaves that book
// empty and is logged; it never stops startup.
func LoadInto(s Store, m *model.Model, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, b := range Books {
		err := ReloadBook(s, m, b)
		switch {
		case err == nil:
		case errors.Is(err, ErrBookNotFound):
			logger.Info("book not found, starting empty", "book", string(b))
		default:
			logger.Warn("book unreadable, starting empty", "book", string(b), "error", err)
		}
	}
}

// ReloadBook replaces book b in m with the stored copy. On error m is left
// unchanged.
func ReloadBook(s Store, m *model.Model, b Book) error {
	switch b {
	case BookClients:
		cs, err := s.LoadClients()
		if err != nil {
			return err
		}
		return m.ResetClients(cs)
	case BookProperties:
		ps, err := s.LoadProperties()
		if err != nil {
			return err
		}
		return m.ResetProperties(ps)
	case BookMeetings:
		ms, err := s.LoadMeetings()
		if err != nil {
			return err
		}
		return m.ResetMeetings(ms)
	}
	return fmt.Errorf("unknown book %q", b)
}
