// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists propdesk books as JSON files or in SQLite.
package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a book file must stay quiet before it is reported.
const DefaultDebounce = 200 * time.Millisecond

// =============================================================================
// WATCHER
// =============================================================================

// Watcher reports book files in a data directory that changed on disk.
//
// Events are collected by background goroutines and only handed over through
// Drain, so callers decide when to reload. The watcher never touches a Model.
type Watcher struct {
	fs       *fsnotify.Watcher
	dir      string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[Book]time.Time // last event per book, not yet quiet
	ready   map[Book]struct{}  // quiet and waiting for Drain

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher watches dir for changes to book files. A debounce of zero uses
// DefaultDebounce.
func NewWatcher(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		fs:       fs,
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[Book]time.Time),
		ready:    make(map[Book]struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start begins watching. The directory itself is watched rather than the
// files, since atomic saves replace them.
func (w *Watcher) Start() error {
	if err := w.fs.Add(w.dir); err != nil {
		return err
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()
	return nil
}

// Drain returns the books that changed since the last call, in Books order.
func (w *Watcher) Drain() []Book {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []Book
	for _, b := range Books {
		if _, ok := w.ready[b]; ok {
			out = append(out, b)
			delete(w.ready, b)
		}
	}
	return out
}

// Close stops the watcher and waits for its goroutines.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

// =============================================================================
// EVENT LOOP
// =============================================================================

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("watcher panic", "panic", r)
		}
	}()

	const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&interesting == 0 {
				continue
			}
			b, ok := bookForFile(filepath.Base(event.Name))
			if !ok {
				continue
			}
			w.mu.Lock()
			w.pending[b] = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// processPending moves books that have been quiet for the debounce period
// from pending to ready.
func (w *Watcher) processPending() {
	defer w.wg.Done()

	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			for b, last := range w.pending {
				if now.Sub(last) >= w.debounce {
					delete(w.pending, b)
					w.ready[b] = struct{}{}
				}
			}
			w.mu.Unlock()
		}
	}
}
