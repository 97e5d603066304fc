// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging sets up the structured process logger for propdesk.
//
// Logs go to a file rather than the terminal so the REPL screen stays clean.
// Every record carries the app name and a per-process session id.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AppName is attached to every record as "app".
const AppName = "propdesk"

// Options selects the handler, level and destination.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	File   string // empty disables file output

	// Writer overrides File when set.
	Writer io.Writer
}

// Logger is a slog.Logger bound to one session and its log file.
type Logger struct {
	*slog.Logger
	SessionID string

	closer io.Closer
}

// New builds a Logger from opts. The log file and its directory are created
// when missing; records are appended.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	var closer io.Closer
	if w == nil && opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = io.Discard
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("unknown log format %q (expected json or text)", opts.Format)
	}

	id := uuid.NewString()
	return &Logger{
		Logger:    slog.New(handler).With(slog.String("app", AppName), slog.String("session_id", id)),
		SessionID: id,
		closer:    closer,
	}, nil
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	l, _ := New(Options{Writer: io.Discard})
	return l
}

// Close closes the log file, if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel maps a config level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
