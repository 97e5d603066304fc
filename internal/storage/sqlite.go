// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// SCHEMA
// =============================================================================

// position keeps insertion order, which the books expose to the user.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS clients (
    position INTEGER NOT NULL,
    kind     TEXT NOT NULL,
    name     TEXT NOT NULL,
    phone    TEXT NOT NULL,
    email    TEXT NOT NULL,
    PRIMARY KEY (kind, phone)
);

CREATE TABLE IF NOT EXISTS properties (
    position    INTEGER NOT NULL,
    postal_code TEXT NOT NULL,
    unit        TEXT NOT NULL,
    type        TEXT NOT NULL,
    ask         TEXT NOT NULL DEFAULT '',
    bid         TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (postal_code, unit)
);

CREATE TABLE IF NOT EXISTS meetings (
    position    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    date        TEXT NOT NULL,
    buyer       TEXT NOT NULL,
    seller      TEXT NOT NULL,
    type        TEXT NOT NULL,
    postal_code TEXT NOT NULL,
    PRIMARY KEY (title, date)
);
`

// =============================================================================
// SQLITE STORE
// =============================================================================

// SQLiteStore keeps all three books in one SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// LOAD
// =============================================================================

func (s *SQLiteStore) LoadClients() ([]model.Client, error) {
	rows, err := s.db.Query(`SELECT kind, name, phone, email FROM clients ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var stored []storedClient
	for rows.Next() {
		var c storedClient
		if err := rows.Scan(&c.Type, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		stored = append(stored, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cs, err := decodeAll[storedClient, model.Client](stored)
	if err != nil {
		return nil, &BookError{Book: BookClients, Source: s.path, Err: err}
	}
	return cs, nil
}

func (s *SQLiteStore) LoadProperties() ([]model.Property, error) {
	rows, err := s.db.Query(`SELECT postal_code, unit, type, ask, bid FROM properties ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var stored []storedProperty
	for rows.Next() {
		var p storedProperty
		if err := rows.Scan(&p.PostalCode, &p.Unit, &p.Type, &p.Ask, &p.Bid); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		stored = append(stored, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ps, err := decodeAll[storedProperty, model.Property](stored)
	if err != nil {
		return nil, &BookError{Book: BookProperties, Source: s.path, Err: err}
	}
	return ps, nil
}

func (s *SQLiteStore) LoadMeetings() ([]model.Meeting, error) {
	rows, err := s.db.Query(`SELECT title, date, buyer, seller, type, postal_code FROM meetings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	var stored []storedMeeting
	for rows.Next() {
		var m storedMeeting
		if err := rows.Scan(&m.Title, &m.Date, &m.Buyer, &m.Seller, &m.Type, &m.PostalCode); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		stored = append(stored, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ms, err := decodeAll[storedMeeting, model.Meeting](stored)
	if err != nil {
		return nil, &BookError{Book: BookMeetings, Source: s.path, Err: err}
	}
	return ms, nil
}

// =============================================================================
// SAVE
// =============================================================================

func (s *SQLiteStore) SaveClients(cs []model.Client) error {
	rows := make([][]any, 0, len(cs))
	for _, c := range encodeAll(cs, fromClient) {
		rows = append(rows, []any{c.Type, c.Name, c.Phone, c.Email})
	}
	return s.replaceTable("clients",
		`INSERT INTO clients (position, kind, name, phone, email) VALUES (?, ?, ?, ?, ?)`, rows)
}

func (s *SQLiteStore) SaveProperties(ps []model.Property) error {
	rows := make([][]any, 0, len(ps))
	for _, p := range encodeAll(ps, fromProperty) {
		rows = append(rows, []any{p.PostalCode, p.Unit, p.Type, p.Ask, p.Bid})
	}
	return s.replaceTable("properties",
		`INSERT INTO properties (position, postal_code, unit, type, ask, bid) VALUES (?, ?, ?, ?, ?, ?)`, rows)
}

func (s *SQLiteStore) SaveMeetings(ms []model.Meeting) error {
	rows := make([][]any, 0, len(ms))
	for _, m := range encodeAll(ms, fromMeeting) {
		rows = append(rows, []any{m.Title, m.Date, m.Buyer, m.Seller, m.Type, m.PostalCode})
	}
	return s.replaceTable("meetings",
		`INSERT INTO meetings (position, title, date, buyer, seller, type, postal_code) VALUES (?, ?, ?, ?, ?, ?, ?)`, rows)
}

// replaceTable swaps the contents of table for rows in one transaction.
// Each row is prefixed with its position.
func (s *SQLiteStore) replaceTable(table, insert string, rows [][]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		args := append([]any{i}, row...)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
