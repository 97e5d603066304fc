// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses and executes propdesk command lines.
package commands

import (
	"errors"
	"fmt"
)

// =============================================================================
// MESSAGES
// =============================================================================

const (
	MessageInvalidFormat   = "Invalid command format!\n%s"
	MessageUnknownCommand  = "Unknown command"
	MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "

	MessageBuyerNotFound    = "Buyer not found."
	MessageSellerNotFound   = "Seller not found."
	MessagePropertyNotFound = "Property not found."
	MessageMeetingNotFound  = "Meeting not found."

	MessageDuplicateProperty = "This property already exists in the property book"
	MessageDuplicateMeeting  = "There is already a meeting of the same title scheduled on this date. " +
		"Please change either the meeting title or date."
)

// ErrUnknownCommand is matched by the ParseError for an unrecognised command word.
var ErrUnknownCommand = errors.New("unknown command")

// =============================================================================
// PARSE ERROR
// =============================================================================

// ParseError reports a malformed command line. Message is shown to the user
// as is. Usage is set when the error concerns a known command.
type ParseError struct {
	Message string
	Usage   string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// formatError builds the "Invalid command format!" error for usage.
func formatError(usage string) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(MessageInvalidFormat, usage),
		Usage:   usage,
	}
}

// valueError wraps a value object validation failure. The message is the
// constraint text of the offending field.
func valueError(usage string, err error) *ParseError {
	return &ParseError{Message: err.Error(), Usage: usage, Err: err}
}

func unknownCommandError() *ParseError {
	return &ParseError{Message: MessageUnknownCommand, Err: ErrUnknownCommand}
}

// =============================================================================
// COMMAND ERROR
// =============================================================================

// CommandError reports a command that parsed but could not be carried out
// against the current records.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func commandError(err error, format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...), Err: err}
}
