// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"github.com/jeranaias/propdesk/internal/model"
)

// Command is a parsed, validated command ready to run against a Model.
type Command interface {
	// Execute applies the command. A *CommandError is returned when the
	// records do not allow it; the model is left unchanged in that case.
	Execute(m *model.Model) (Result, error)

	// Word is the command word that produced this command.
	Word() string
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

func feedback(msg string) Result {
	return Result{Feedback: msg}
}
