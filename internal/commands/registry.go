// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"fmt"
	"strings"

	"github.com/jeranaias/propdesk/internal/model"
)

// =============================================================================
// COMMAND SPEC
// =============================================================================

// ParseFunc turns the argument tail of a command line into a Command.
// Parsers only check structure and field values; they never see the Model.
type ParseFunc func(args string) (Command, error)

// Spec describes one command word.
type Spec struct {
	// Word is the command word, e.g. "addbuyer"
	Word string

	// Description is the one-line summary shown in help and completion
	Description string

	// Usage is the full usage text shown on a format error
	Usage string

	// Category groups commands in help
	Category string

	// Prefixes the command accepts, offered by completion
	Prefixes []Prefix

	// Parse builds the command from its arguments
	Parse ParseFunc
}

// Categories in help order.
const (
	CategoryClients    = "Clients"
	CategoryProperties = "Properties"
	CategoryMeetings   = "Meetings"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{CategoryClients, CategoryProperties, CategoryMeetings, CategoryGeneral}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry maps command words to their specs.
type Registry struct {
	specs map[string]*Spec
	order []string
}

// NewRegistry returns a registry holding every built-in command.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]*Spec)}
	r.registerBuiltins()
	return r
}

// Register adds spec, replacing any spec with the same word.
func (r *Registry) Register(spec *Spec) {
	word := spec.Word
	if _, exists := r.specs[word]; !exists {
		r.order = append(r.order, word)
	}
	r.specs[word] = spec
}

// Get returns the spec for word, or nil. Command words are case-sensitive.
func (r *Registry) Get(word string) *Spec {
	return r.specs[word]
}

// All returns every spec in registration order.
func (r *Registry) All() []*Spec {
	out := make([]*Spec, 0, len(r.order))
	for _, w := range r.order {
		out = append(out, r.specs[w])
	}
	return out
}

// Words returns every command word in registration order.
func (r *Registry) Words() []string {
	return append([]string(nil), r.order...)
}

// ByCategory groups specs by category.
func (r *Registry) ByCategory() map[string][]*Spec {
	result := make(map[string][]*Spec)
	for _, spec := range r.All() {
		category := spec.Category
		if category == "" {
			category = CategoryGeneral
		}
		result[category] = append(result[category], spec)
	}
	return result
}

// Parse splits line into a command word and arguments and hands the
// arguments to the word's parser.
func (r *Registry) Parse(line string) (Command, error) {
	word, args := splitCommandWord(line)
	if word == "" {
		return nil, formatError(helpUsage)
	}
	spec := r.Get(word)
	if spec == nil {
		return nil, unknownCommandError()
	}
	return spec.Parse(args)
}

// =============================================================================
// HELP
// =============================================================================

// HelpMarkdown renders the command reference as Markdown.
func (r *Registry) HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# propdesk commands\n\n")
	b.WriteString("Arguments are written as `prefix/value` and may appear in any order.\n")

	groups := r.ByCategory()
	for _, category := range categoryOrder {
		specs := groups[category]
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", category)
		for _, spec := range specs {
			fmt.Fprintf(&b, "\n**%s**: %s\n\n```\n%s\n```\n", spec.Word, spec.Description, usageBody(spec.Usage))
		}
	}
	return b.String()
}

// usageBody drops the "word: description" line from a usage text.
func usageBody(usage string) string {
	if _, rest, ok := strings.Cut(usage, "\n"); ok {
		return rest
	}
	return usage
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	clientPrefixes := []Prefix{PrefixName, PrefixPhone, PrefixEmail}

	// Client commands
	r.Register(&Spec{
		Word:        "addbuyer",
		Description: "Add a buyer",
		Usage:       addBuyerUsage,
		Category:    CategoryClients,
		Prefixes:    clientPrefixes,
		Parse:       parseAddClient(model.Buyer, addBuyerUsage),
	})
	r.Register(&Spec{
		Word:        "addseller",
		Description: "Add a seller",
		Usage:       addSellerUsage,
		Category:    CategoryClients,
		Prefixes:    clientPrefixes,
		Parse:       parseAddClient(model.Seller, addSellerUsage),
	})
	r.Register(&Spec{
		Word:        "deletebuyer",
		Description: "Delete a buyer by phone number",
		Usage:       deleteBuyerUsage,
		Category:    CategoryClients,
		Prefixes:    []Prefix{PrefixPhone},
		Parse:       parseDeleteClient(model.Buyer, deleteBuyerUsage),
	})
	r.Register(&Spec{
		Word:        "deleteseller",
		Description: "Delete a seller by phone number",
		Usage:       deleteSellerUsage,
		Category:    CategoryClients,
		Prefixes:    []Prefix{PrefixPhone},
		Parse:       parseDeleteClient(model.Seller, deleteSellerUsage),
	})
	r.Register(&Spec{
		Word:        "filterclient",
		Description: "Show clients whose name starts with the given text",
		Usage:       filterClientUsage,
		Category:    CategoryClients,
		Prefixes:    []Prefix{PrefixName},
		Parse:       parseFilterClient,
	})

	// Property commands
	r.Register(&Spec{
		Word:        "addproperty",
		Description: "Add a property",
		Usage:       addPropertyUsage,
		Category:    CategoryProperties,
		Prefixes:    []Prefix{PrefixPostalCode, PrefixUnit, PrefixType, PrefixAsk, PrefixBid},
		Parse:       parseAddProperty,
	})
	r.Register(&Spec{
		Word:        "deleteproperty",
		Description: "Delete a property by postal code and unit",
		Usage:       deletePropertyUsage,
		Category:    CategoryProperties,
		Prefixes:    []Prefix{PrefixPostalCode, PrefixUnit},
		Parse:       parseDeleteProperty,
	})
	r.Register(&Spec{
		Word:        "filterproperty",
		Description: "Show properties by type and asking price",
		Usage:       filterPropertyUsage,
		Category:    CategoryProperties,
		Prefixes:    []Prefix{PrefixType, PrefixMaxPrice, PrefixMinPrice},
		Parse:       parseFilterProperty,
	})

	// Meeting commands
	r.Register(&Spec{
		Word:        "addmeeting",
		Description: "Schedule a meeting",
		Usage:       addMeetingUsage,
		Category:    CategoryMeetings,
		Prefixes:    []Prefix{PrefixTitle, PrefixDate, PrefixBuyer, PrefixSeller, PrefixType, PrefixPostalCode},
		Parse:       parseAddMeeting,
	})
	r.Register(&Spec{
		Word:        "deletemeeting",
		Description: "Delete a meeting by title and date",
		Usage:       deleteMeetingUsage,
		Category:    CategoryMeetings,
		Prefixes:    []Prefix{PrefixTitle, PrefixDate},
		Parse:       parseDeleteMeeting,
	})

	// General commands
	r.Register(&Spec{
		Word:        "list",
		Description: "Show all buyers, sellers, clients or properties",
		Usage:       listUsage,
		Category:    CategoryGeneral,
		Prefixes:    []Prefix{PrefixKey},
		Parse:       parseList,
	})
	r.Register(&Spec{
		Word:        "clear",
		Description: "Delete every record",
		Usage:       clearUsage,
		Category:    CategoryGeneral,
		Parse:       parseClear,
	})
	r.Register(&Spec{
		Word:        "help",
		Description: "Show this reference",
		Usage:       helpUsage,
		Category:    CategoryGeneral,
		Parse:       parseHelp,
	})
	r.Register(&Spec{
		Word:        "exit",
		Description: "Exit propdesk",
		Usage:       exitUsage,
		Category:    CategoryGeneral,
		Parse:       parseExit,
	})
}
