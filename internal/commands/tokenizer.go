// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// PREFIXES
// =============================================================================

// Prefix marks the start of an argument value, e.g. "n/" in "n/John".
type Prefix string

func (p Prefix) String() string { return string(p) }

const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixPostalCode Prefix = "pc/"
	PrefixUnit       Prefix = "u/"
	PrefixType       Prefix = "t/"
	PrefixAsk        Prefix = "a/"
	PrefixBid        Prefix = "bd/"
	PrefixKey        Prefix = "k/"
	PrefixTitle      Prefix = "mt/"
	PrefixDate       Prefix = "md/"
	PrefixBuyer      Prefix = "b/"
	PrefixSeller     Prefix = "s/"
	PrefixMaxPrice   Prefix = "lte/"
	PrefixMinPrice   Prefix = "gte/"
)

// =============================================================================
// ARGUMENT MULTIMAP
// =============================================================================

// ArgumentMultimap holds the values found for each prefix, in the order they
// appeared, plus the text before the first prefix.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

// Value returns the last value given for p.
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m *ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix in ps appeared.
func (m *ArgumentMultimap) HasAll(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// Preamble returns the trimmed text before the first prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// VerifyNoDuplicatePrefixesFor fails if any of ps appeared more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(ps ...Prefix) error {
	var dups []string
	for _, p := range ps {
		if len(m.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &ParseError{Message: MessageDuplicateFields + strings.Join(dups, " ")}
}

// =============================================================================
// TOKENIZER
// =============================================================================

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into prefixed values. A prefix only counts at the start
// of args or right after whitespace, so "abcn/x" holds no n/ prefix.
// Tokenize never fails; validation happens in the parsers.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	args = norm.NFC.String(args)

	positions := findPrefixPositions(args, prefixes)

	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		from := 0
		for from < len(args) {
			idx := strings.Index(args[from:], string(p))
			if idx < 0 {
				break
			}
			idx += from
			if atTokenBoundary(args, idx) {
				positions = append(positions, prefixPosition{prefix: p, start: idx})
			}
			from = idx + 1
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})
	return positions
}

func atTokenBoundary(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return unicode.IsSpace(r)
}

// =============================================================================
// COMMAND LINE
// =============================================================================

// splitCommandWord separates the command word from its argument tail.
// The tail keeps its leading whitespace so a prefix right after the word
// still sits on a token boundary.
func splitCommandWord(input string) (word, args string) {
	input = strings.TrimSpace(norm.NFC.String(input))
	idx := strings.IndexFunc(input, unicode.IsSpace)
	if idx < 0 {
		return input, ""
	}
	return input[:idx], input[idx:]
}

// hasExcessTokens reports whether args holds more prefix-like tokens than
// expected. The trimmed args are split at each whitespace character that
// precedes a token containing '/' after its first character. A lone "/"
// as the first segment is let through so the presence check reports it.
func hasExcessTokens(args string, expected int) bool {
	s := strings.TrimSpace(args)
	segments := 1
	firstEnd := len(s)

	for i, r := range s {
		if !unicode.IsSpace(r) {
			continue
		}
		rest := s[i+utf8.RuneLen(r):]
		if !startsPrefixLikeToken(rest) {
			continue
		}
		if segments == 1 {
			firstEnd = i
		}
		segments++
	}

	if s[:firstEnd] == "/" {
		return false
	}
	return segments > expected
}

func startsPrefixLikeToken(s string) bool {
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		end = len(s)
	}
	return strings.LastIndexByte(s[:end], '/') >= 1
}
