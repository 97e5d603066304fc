// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the records and in-memory books for propdesk.
package model

// =============================================================================
// RECORD CONSTRAINT
// =============================================================================

// Record is implemented by every entity kept in a Book.
// SameAs is the identity check used for duplicate rejection; Equal compares all fields.
type Record[T any] interface {
	SameAs(other T) bool
	Equal(other T) bool
}

// Filter returns the records in xs that satisfy pred, in order.
// A nil pred keeps every record.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred == nil || pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// =============================================================================
// BOOK
// =============================================================================

// Book is an ordered collection of records that are unique by identity,
// plus a predicate that drives its filtered view.
//
// Book is not safe for concurrent use.
type Book[T Record[T]] struct {
	items     []T
	predicate func(T) bool
}

// NewBook returns an empty book that shows every record.
func NewBook[T Record[T]]() *Book[T] {
	return &Book[T]{}
}

// Len returns the number of records.
func (b *Book[T]) Len() int {
	return len(b.items)
}

// Contains reports whether a record with the same identity as x is present.
func (b *Book[T]) Contains(x T) bool {
	return b.indexOf(x) >= 0
}

// Add appends x, or returns ErrDuplicate if its identity is taken.
func (b *Book[T]) Add(x T) error {
	if b.Contains(x) {
		return ErrDuplicate
	}
	b.items = append(b.items, x)
	return nil
}

// Remove deletes the record with the same identity as x.
func (b *Book[T]) Remove(x T) error {
	i := b.indexOf(x)
	if i < 0 {
		return ErrNotFound
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return nil
}

// Set replaces target with edited in place.
// The edit may keep target's identity, but must not collide with any other record.
func (b *Book[T]) Set(target, edited T) error {
	i := b.indexOf(target)
	if i < 0 {
		return ErrNotFound
	}
	if !target.SameAs(edited) && b.Contains(edited) {
		return ErrDuplicate
	}
	b.items[i] = edited
	return nil
}

// Reset replaces the contents with xs. The book is left unchanged if xs
// contains two records with the same identity.
func (b *Book[T]) Reset(xs []T) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].SameAs(xs[j]) {
				return ErrDuplicate
			}
		}
	}
	b.items = append([]T(nil), xs...)
	return nil
}

// Items returns a copy of all records in insertion order.
func (b *Book[T]) Items() []T {
	return append([]T(nil), b.items...)
}

// SetPredicate replaces the filter. nil shows every record.
func (b *Book[T]) SetPredicate(pred func(T) bool) {
	b.predicate = pred
}

// Filtered returns the records matching the current predicate.
// The view is recomputed on every call so it always reflects the latest contents.
func (b *Book[T]) Filtered() []T {
	return Filter(b.items, b.predicate)
}

func (b *Book[T]) indexOf(x T) int {
	for i, item := range b.items {
		if item.SameAs(x) {
			return i
		}
	}
	return -1
}
