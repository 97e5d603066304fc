// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

import (
	"errors"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

var (
	// ErrInvalidValue is matched by every ValidationError.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicate is returned when a record with the same identity is already in a book.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when no record with the given identity is in a book.
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports a field value that failed its format check.
// Error returns the constraint message unchanged so it can be shown to the user as-is.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return e.Constraint
}

// Is allows errors.Is(err, ErrInvalidValue).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidValue
}

func invalid(field, value, constraint string) error {
	return &ValidationError{Field: field, Value: value, Constraint: constraint}
}
