// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/jeranaias/propdesk/internal/commands"
	"github.com/jeranaias/propdesk/internal/config"
	"github.com/jeranaias/propdesk/internal/logging"
	"github.com/jeranaias/propdesk/internal/model"
	"github.com/jeranaias/propdesk/internal/storage"
)

// =============================================================================
// APP
// =============================================================================

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	DataDir    string
	Backend    string
	NoColor    bool
}

// App wires configuration, logging, storage and the model together.
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Store    storage.Store
	Model    *model.Model
	Registry *commands.Registry

	watcher *storage.Watcher
}

// LoadConfig loads the configuration and applies flag overrides.
func LoadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, configError(err)
	}

	if opts.DataDir != "" {
		cfg.Storage.DataDir = opts.DataDir
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = strings.ToLower(opts.Backend)
	}
	if opts.NoColor {
		cfg.UI.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return nil, configError(fmt.Errorf("invalid flags: %w", err))
	}
	return cfg, nil
}

// Open loads configuration, opens the configured store and fills the model
// from it. Books that are missing or unreadable start empty.
func Open(opts Options) (*App, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.LogFile(),
	})
	if err != nil {
		return nil, configError(err)
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.Storage.Backend, "error", err)
		logger.Close()
		return nil, err
	}

	m := model.New(store, logger.Logger)
	storage.LoadInto(store, m, logger.Logger)

	logger.Info("propdesk started", "version", Version, "backend", cfg.Storage.Backend)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Model:    m,
		Registry: commands.NewRegistry(),
	}, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return storage.OpenSQLite(cfg.SQLitePath())
	default:
		return storage.NewJSONStore(cfg.DataDir())
	}
}

// =============================================================================
// EXTERNAL EDITS
// =============================================================================

// StartWatcher watches the JSON data directory when storage.watch is set.
// A watcher that cannot start is logged and skipped.
func (a *App) StartWatcher() {
	js, ok := a.Store.(*storage.JSONStore)
	if !ok || !a.Config.Storage.Watch || a.watcher != nil {
		return
	}

	w, err := storage.NewWatcher(js.Dir(), storage.DefaultDebounce, a.Logger.Logger)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		a.Logger.Warn("file watcher disabled", "dir", js.Dir(), "error", err)
		if w != nil {
			w.Close()
		}
		return
	}
	a.watcher = w
}

// SyncExternalEdits reloads every book edited outside propdesk since the
// last call and returns the books that were reloaded. Files that still match
// the store's own last write are skipped.
func (a *App) SyncExternalEdits() []storage.Book {
	if a.watcher == nil {
		return nil
	}
	js, _ := a.Store.(*storage.JSONStore)

	var reloaded []storage.Book
	for _, b := range a.watcher.Drain() {
		if js != nil && !js.Changed(b) {
			continue
		}
		if err := storage.ReloadBook(a.Store, a.Model, b); err != nil {
			a.Logger.Warn("reload failed, keeping records in memory", "book", string(b), "error", err)
			continue
		}
		a.Logger.Info("book reloaded", "book", string(b))
		reloaded = append(reloaded, b)
	}
	return reloaded
}

// Close stops the watcher, closes the store and the log file.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	err := a.Store.Close()
	a.Logger.Info("propdesk stopped")
	a.Logger.Close()
	return err
}
