// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - Machine-readable output for `propdesk exec --json`.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/propdesk/internal/export"
)

// JSONResponse is the envelope written by `exec --json`.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC3339 UTC time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command word that was executed
	Command string `json:"command,omitempty"`

	// RequestID identifies this invocation in the log file
	RequestID string `json:"request_id"`
}

// ExecData is the Data of a successful exec response.
type ExecData struct {
	Feedback string `json:"feedback"`

	// Display is "clients" or "properties"
	Display string `json:"display"`

	// View holds the table shown after the command: the active book
	// followed by the meetings.
	View []export.Table `json:"view"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command, requestID string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
		RequestID: requestID,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command, requestID string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
		RequestID: requestID,
	}
}

// newRequestID returns a fresh id for one exec invocation.
func newRequestID() string {
	return uuid.NewString()
}

// Write outputs the JSON response to w, indented.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}
