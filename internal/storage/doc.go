// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
//
// Both backends save whole books: every mutation rewrites the affected
// book, and loading re-validates each record through the model constructors.
//
// # Key Types
//
//   - Store: load/save interface satisfied by both backends (and model.Saver)
//   - JSONStore: clientbook.json, propertybook.json and meetingbook.json in one directory
//   - SQLiteStore: one database with a table per book
//   - Watcher: fsnotify-based detection of external edits to JSON books
//
// # Usage
//
//	store, err := storage.NewJSONStore(dataDir)
//	m := model.New(store, logger)
//	storage.LoadInto(store, m, logger)
//
// # Storage Location
//
// Books are stored in ~/.propdesk/data/ unless configured otherwise.
package storage
