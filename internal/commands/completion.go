// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// COMPLETION TYPES
// =============================================================================

// Completion is one candidate for the token under the cursor.
type Completion struct {
	// Value replaces the token being completed
	Value string

	// Description is shown next to the value when listing candidates
	Description string

	// Score ranks candidates; higher is better
	Score int
}

// =============================================================================
// COMPLETER
// =============================================================================

// Completer offers command words, prefixes and enumerated prefix values.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer over registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns candidates for the last token of input.
func (c *Completer) Complete(input string) []Completion {
	trimmed := strings.TrimLeftFunc(input, unicode.IsSpace)

	// Still typing the command word?
	if !strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return c.completeWords(trimmed)
	}

	word, args := splitCommandWord(trimmed)
	spec := c.registry.Get(word)
	if spec == nil || len(spec.Prefixes) == 0 {
		return nil
	}

	token := lastToken(input)
	if idx := strings.IndexByte(token, '/'); idx >= 0 {
		return completeValues(Prefix(token[:idx+1]), token[idx+1:])
	}
	return completePrefixes(spec, args, token)
}

// WordCompleter adapts Complete to the line editor's word completer:
// head and tail are kept, and each completion replaces the token before pos.
func (c *Completer) WordCompleter(line string, pos int) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}
	before := line[:pos]
	token := lastToken(before)
	head = before[:len(before)-len(token)]
	tail = line[pos:]

	for _, comp := range c.Complete(before) {
		completions = append(completions, comp.Value)
	}
	return head, completions, tail
}

func (c *Completer) completeWords(partial string) []Completion {
	var completions []Completion
	lower := strings.ToLower(partial)
	for _, spec := range c.registry.All() {
		if strings.HasPrefix(spec.Word, lower) {
			completions = append(completions, Completion{
				Value:       spec.Word,
				Description: spec.Description,
				Score:       calculateScore(spec.Word, partial),
			})
		}
	}
	sortCompletions(completions)
	return completions
}

// completePrefixes offers the spec's prefixes that have not been given yet.
func completePrefixes(spec *Spec, args, partial string) []Completion {
	used := Tokenize(args, spec.Prefixes...)

	var completions []Completion
	for _, p := range spec.Prefixes {
		if used.Has(p) {
			continue
		}
		if strings.HasPrefix(p.String(), partial) {
			completions = append(completions, Completion{
				Value: p.String(),
				Score: calculateScore(p.String(), partial),
			})
		}
	}
	sortCompletions(completions)
	return completions
}

// completeValues offers the fixed values of prefixes that have them.
func completeValues(p Prefix, partial string) []Completion {
	var values []string
	switch p {
	case PrefixKey:
		for _, k := range ListKeys {
			values = append(values, string(k))
		}
	case PrefixType:
		for _, t := range model.PropertyTypes {
			values = append(values, t.String())
		}
	default:
		return nil
	}

	var completions []Completion
	lower := strings.ToLower(partial)
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(v), lower) {
			completions = append(completions, Completion{
				Value: p.String() + v,
				Score: calculateScore(v, partial),
			})
		}
	}
	sortCompletions(completions)
	return completions
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func lastToken(s string) string {
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return s[idx+size:]
}

// calculateScore calculates a match score for completion ranking.
// Higher score = better match.
func calculateScore(value, partial string) int {
	value = strings.ToLower(value)
	partial = strings.ToLower(partial)

	score := 100
	if value == partial {
		return score + 100
	}
	if strings.HasPrefix(value, partial) {
		score += 50
		score += 20 - len(value)
	}
	score -= len(value) / 2
	return score
}

// sortCompletions sorts completions by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}
