// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/propdesk/internal/commands"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// lineReader provides line editing, history and completion for the REPL.
type lineReader struct {
	line        *liner.State
	historyFile string
}

func newLineReader(historyFile string, completer *commands.Completer) *lineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(completer.WordCompleter)

	r := &lineReader{line: line, historyFile: historyFile}
	r.loadHistory()
	return r
}

func (r *lineReader) loadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// readLine reads one line. Non-empty lines are added to history.
func (r *lineReader) readLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory writes history with owner-only permissions.
func (r *lineReader) saveHistory() error {
	if r.historyFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = r.line.WriteHistory(f)
	return err
}

func (r *lineReader) close() error {
	err := r.saveHistory()
	r.line.Close()
	return err
}

// =============================================================================
// INTERACTIVE MODE
// =============================================================================

// RunInteractive runs the REPL on the terminal until exit or Ctrl+D.
// Ctrl+C abandons the current line.
func RunInteractive(app *App, out io.Writer) error {
	app.StartWatcher()

	render := NewRenderer(out, RenderOptions{
		Color:        ColorsEnabled(app.Config.UI.Color, out),
		Width:        GetTerminalWidth(out),
		ShowMeetings: app.Config.UI.ShowMeetings,
	})
	session := NewSession(app, render, true)

	reader := newLineReader(app.Config.HistoryFile(), commands.NewCompleter(app.Registry))
	defer func() {
		if err := reader.close(); err != nil {
			app.Logger.Warn("failed to save history", "error", err)
		}
	}()

	render.Notice("propdesk " + Version + " - type 'help' for commands, 'exit' to quit.")
	render.View(app.Model)

	for {
		input, err := reader.readLine(app.Config.UI.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// EOF (Ctrl+D) or a closed terminal.
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		if exit, _ := session.Handle(input); exit {
			return nil
		}
	}
}

// =============================================================================
// BATCH MODE
// =============================================================================

// RunBatch reads command lines from in until EOF or exit. Blank lines are
// skipped. Output is plain: one feedback or error line per command. If any
// command failed the returned error carries ExitGeneralError.
func RunBatch(app *App, in io.Reader, out io.Writer) error {
	render := NewRenderer(out, RenderOptions{Color: false})
	session := NewSession(app, render, false)

	failed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		exit, err := session.Handle(line)
		if err != nil {
			failed++
		}
		if exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if failed > 0 {
		return &ExitError{
			Code:     ExitGeneralError,
			Err:      fmt.Errorf("%d command(s) failed", failed),
			Reported: true,
		}
	}
	return nil
}
