// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// SESSION
// =============================================================================

// Session runs command lines against an App and renders the outcome. It is
// shared by the interactive REPL and batch mode.
type Session struct {
	app    *App
	render *Renderer

	// showView prints the current tables after every command
	showView bool

	lastPersistErr error
}

// NewSession creates a session. showView is off in batch mode, where each
// command prints only its feedback line.
func NewSession(app *App, render *Renderer, showView bool) *Session {
	return &Session{
		app:            app,
		render:         render,
		showView:       showView,
		lastPersistErr: app.Model.LastPersistError(),
	}
}

// Handle runs one command line. It returns exit=true once the user asked to
// leave, and the parse or command error if the line failed. Errors have
// already been rendered.
func (s *Session) Handle(line string) (exit bool, err error) {
	for _, b := range s.app.SyncExternalEdits() {
		s.render.Notice(fmt.Sprintf("Reloaded %s after it changed on disk.", b.FileName()))
	}

	cmd, err := s.app.Registry.Parse(line)
	if err != nil {
		s.app.Logger.Info("command rejected", "command", s.commandWord(line))
		s.render.Error(err)
		s.view()
		return false, err
	}

	result, err := cmd.Execute(s.app.Model)
	if err != nil {
		s.app.Logger.Info("command failed", "command", cmd.Word())
		s.render.Error(err)
		s.view()
		return false, err
	}
	s.app.Logger.Info("command executed", "command", cmd.Word())

	s.render.Feedback(result.Feedback)
	if result.ShowHelp {
		s.render.Help(s.app.Registry.HelpMarkdown())
	}
	if !result.Exit {
		s.view()
	}
	s.checkPersist()
	return result.Exit, nil
}

func (s *Session) view() {
	if s.showView {
		s.render.View(s.app.Model)
	}
}

// checkPersist warns once for each new save failure.
func (s *Session) checkPersist() {
	err := s.app.Model.LastPersistError()
	if err != nil && err != s.lastPersistErr {
		s.render.Warning("changes could not be saved and are kept in memory only: " + err.Error())
	}
	s.lastPersistErr = err
}

// commandWord names the command for logging. Unknown words are not logged
// verbatim.
func (s *Session) commandWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	if spec := s.app.Registry.Get(fields[0]); spec != nil {
		return spec.Word
	}
	return "unknown"
}
