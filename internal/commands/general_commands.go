// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"github.com/jeranaias/propdesk/internal/model"
)

const (
	helpUsage  = "help: Shows the command reference.\nExample: help"
	exitUsage  = "exit: Saves and exits propdesk.\nExample: exit"
	clearUsage = "clear: Deletes every client, property and meeting.\nExample: clear"
)

// HelpCommand asks the presentation layer to show the command reference.
type HelpCommand struct{}

func (HelpCommand) Word() string { return "help" }

func (HelpCommand) Execute(*model.Model) (Result, error) {
	return Result{Feedback: "Showing help.", ShowHelp: true}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Word() string { return "exit" }

func (ExitCommand) Execute(*model.Model) (Result, error) {
	return Result{Feedback: "Exiting propdesk as requested ...", Exit: true}, nil
}

// ClearCommand empties every book.
type ClearCommand struct{}

func (ClearCommand) Word() string { return "clear" }

func (ClearCommand) Execute(m *model.Model) (Result, error) {
	m.Clear()
	return feedback("All records have been cleared!"), nil
}

// Trailing text after these words is ignored.

func parseHelp(string) (Command, error)  { return HelpCommand{}, nil }
func parseExit(string) (Command, error)  { return ExitCommand{}, nil }
func parseClear(string) (Command, error) { return ClearCommand{}, nil }
