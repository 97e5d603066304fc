// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
//
// A command line is a command word followed by prefixed arguments, e.g.
// "addbuyer n/John Tan p/91234567 e/john@example.com". The Registry maps each
// word to a parser that checks the arguments and builds a Command; the
// Command is then executed against a model.Model.
//
// # Key Types
//
//   - Registry: command words, usage text and parsers
//   - ArgumentMultimap: prefix values produced by Tokenize
//   - Command / Result: a parsed command and its outcome
//   - ParseError / CommandError: malformed input vs. a command the records reject
//   - Completer: tab completion for words, prefixes and fixed values
//
// # Usage
//
//	reg := commands.NewRegistry()
//	cmd, err := reg.Parse(line)
//	if err != nil {
//	    fmt.Println(err) // usage or constraint message
//	    return
//	}
//	res, err := cmd.Execute(m)
package commands
