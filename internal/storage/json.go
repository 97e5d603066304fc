// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
package storage

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/propdesk/internal/model"
	"github.com/jeranaias/propdesk/internal/util"
)

// =============================================================================
// FILE LAYOUT
// =============================================================================

type clientFile struct {
	Clients []storedClient `json:"clients"`
}

type propertyFile struct {
	Properties []storedProperty `json:"properties"`
}

type meetingFile struct {
	Meetings []storedMeeting `json:"meetings"`
}

// =============================================================================
// JSON STORE
// =============================================================================

// JSONStore keeps each book in its own JSON file under Dir.
//
// The store remembers a digest of the bytes it last read or wrote for each
// book, so Changed can tell an external edit from its own writes.
type JSONStore struct {
	dir string

	mu      sync.Mutex
	digests map[Book][sha256.Size]byte
}

// NewJSONStore opens a store in dir, creating the directory if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONStore{
		dir:     dir,
		digests: make(map[Book][sha256.Size]byte),
	}, nil
}

// Dir returns the data directory.
func (s *JSONStore) Dir() string { return s.dir }

// Path returns the file that holds book b.
func (s *JSONStore) Path(b Book) string {
	return filepath.Join(s.dir, b.FileName())
}

// Close is a no-op; every write is already on disk.
func (s *JSONStore) Close() error { return nil }

// =============================================================================
// LOAD
// =============================================================================

func (s *JSONStore) LoadClients() ([]model.Client, error) {
	var f clientFile
	if err := s.readBook(BookClients, &f); err != nil {
		return nil, err
	}
	cs, err := decodeAll[storedClient, model.Client](f.Clients)
	if err != nil {
		return nil, &BookError{Book: BookClients, Source: s.Path(BookClients), Err: err}
	}
	return cs, nil
}

func (s *JSONStore) LoadProperties() ([]model.Property, error) {
	var f propertyFile
	if err := s.readBook(BookProperties, &f); err != nil {
		return nil, err
	}
	ps, err := decodeAll[storedProperty, model.Property](f.Properties)
	if err != nil {
		return nil, &BookError{Book: BookProperties, Source: s.Path(BookProperties), Err: err}
	}
	return ps, nil
}

func (s *JSONStore) LoadMeetings() ([]model.Meeting, error) {
	var f meetingFile
	if err := s.readBook(BookMeetings, &f); err != nil {
		return nil, err
	}
	ms, err := decodeAll[storedMeeting, model.Meeting](f.Meetings)
	if err != nil {
		return nil, &BookError{Book: BookMeetings, Source: s.Path(BookMeetings), Err: err}
	}
	return ms, nil
}

func (s *JSONStore) readBook(b Book, v any) error {
	path := s.Path(b)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.forget(b)
			return fmt.Errorf("%s: %w", path, ErrBookNotFound)
		}
		return err
	}
	s.remember(b, data)

	if err := json.Unmarshal(data, v); err != nil {
		return &BookError{Book: b, Source: path, Err: err}
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

func (s *JSONStore) SaveClients(cs []model.Client) error {
	return s.writeBook(BookClients, clientFile{Clients: encodeAll(cs, fromClient)})
}

func (s *JSONStore) SaveProperties(ps []model.Property) error {
	return s.writeBook(BookProperties, propertyFile{Properties: encodeAll(ps, fromProperty)})
}

func (s *JSONStore) SaveMeetings(ms []model.Meeting) error {
	return s.writeBook(BookMeetings, meetingFile{Meetings: encodeAll(ms, fromMeeting)})
}

func (s *JSONStore) writeBook(b Book, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", b, err)
	}
	data = append(data, '\n')

	if err := util.AtomicWriteFile(s.Path(b), data, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", b, err)
	}
	s.remember(b, data)
	return nil
}

// =============================================================================
// CHANGE DETECTION
// =============================================================================

// Changed reports whether the file for b differs from what the store last
// read or wrote. A file that appeared or vanished counts as changed.
func (s *JSONStore) Changed(b Book) bool {
	data, err := os.ReadFile(s.Path(b))

	s.mu.Lock()
	defer s.mu.Unlock()
	known, ok := s.digests[b]

	if err != nil {
		return ok
	}
	if !ok {
		return true
	}
	return sha256.Sum256(data) != known
}

func (s *JSONStore) remember(b Book, data []byte) {
	s.mu.Lock()
	s.digests[b] = sha256.Sum256(data)
	s.mu.Unlock()
}

func (s *JSONStore) forget(b Book) {
	s.mu.Lock()
	delete(s.digests, b)
	s.mu.Unlock()
}
