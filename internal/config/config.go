// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for propdesk.
//
// Configuration sources, later ones winning:
//   - Built-in defaults
//   - ~/.propdesk/config.toml (or the path given with --config)
//   - PROPDESK_* environment variables, including those set in ./.env
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jeranaias/propdesk/internal/util"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PROPDESK_"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete propdesk configuration.
type Config struct {
	Version string `toml:"version"`

	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig selects where books are kept.
type StorageConfig struct {
	// Backend is "json" (one file per book) or "sqlite"
	Backend string `toml:"backend" env:"STORAGE_BACKEND"`
	// DataDir holds the JSON book files
	DataDir string `toml:"data_dir" env:"DATA_DIR"`
	// SQLitePath is the database file for the sqlite backend
	SQLitePath string `toml:"sqlite_path" env:"SQLITE_PATH"`
	// Watch reloads JSON books edited outside propdesk
	Watch bool `toml:"watch" env:"WATCH"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Color is "auto", "always" or "never"
	Color string `toml:"color" env:"COLOR"`
	// ShowMeetings renders the meeting table after every command
	ShowMeetings bool `toml:"show_meetings" env:"SHOW_MEETINGS"`
	// HistoryFile stores interactive command history
	HistoryFile string `toml:"history_file" env:"HISTORY_FILE"`
	// Prompt is shown before each interactive command
	Prompt string `toml:"prompt"`
}

// LoggingConfig controls the structured log file.
type LoggingConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
	File   string `toml:"file" env:"LOG_FILE"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
// Paths keep their "~" so a saved default config stays portable.
func Default() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			Backend:    "json",
			DataDir:    "~/.propdesk/data",
			SQLitePath: "~/.propdesk/propdesk.db",
			Watch:      true,
		},
		UI: UIConfig{
			Color:        "auto",
			ShowMeetings: true,
			HistoryFile:  "~/.propdesk/history",
			Prompt:       "propdesk> ",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "~/.propdesk/propdesk.log",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigPath returns ~/.propdesk/config.toml.
func ConfigPath() string {
	return filepath.Join(util.AppDir(), "config.toml")
}

// DataDir returns the expanded JSON data directory.
func (c *Config) DataDir() string { return util.ExpandHome(c.Storage.DataDir) }

// SQLitePath returns the expanded database path.
func (c *Config) SQLitePath() string { return util.ExpandHome(c.Storage.SQLitePath) }

// HistoryFile returns the expanded history path.
func (c *Config) HistoryFile() string { return util.ExpandHome(c.UI.HistoryFile) }

// LogFile returns the expanded log path, or "" when file logging is off.
func (c *Config) LogFile() string { return util.ExpandHome(c.Logging.File) }

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load builds the effective configuration. An empty path means ConfigPath().
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	if path == "" {
		path = ConfigPath()
	}
	path = util.ExpandHome(path)

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes path over cfg. Keys absent from the file keep their
// current values; unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv loads ./.env into the process environment without replacing
// variables that are already set. A missing file is ignored.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies PROPDESK_* environment variables:
//   - PROPDESK_STORAGE_BACKEND, PROPDESK_DATA_DIR, PROPDESK_SQLITE_PATH, PROPDESK_WATCH
//   - PROPDESK_COLOR, PROPDESK_SHOW_MEETINGS, PROPDESK_HISTORY_FILE
//   - PROPDESK_LOG_LEVEL, PROPDESK_LOG_FORMAT, PROPDESK_LOG_FILE
func (c *Config) ApplyEnvOverrides() error {
	return env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to path as TOML with a header comment.
func Save(cfg *Config, path string) error {
	data, err := cfg.TOML()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(util.ExpandHome(path), []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// TOML renders cfg as a commented TOML document.
func (c *Config) TOML() (string, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# propdesk configuration file")
	fmt.Fprintln(&buf, "# Generated by propdesk - edit with care")
	fmt.Fprintln(&buf, "#")
	fmt.Fprintln(&buf, "# Environment variables named PROPDESK_* override these values.")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.String(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	oneOf := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return
			}
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid value '%s', must be one of: %s", value, strings.Join(allowed, ", ")),
		})
	}

	oneOf("storage.backend", c.Storage.Backend, "json", "sqlite")
	oneOf("ui.color", c.UI.Color, "auto", "always", "never")
	oneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error")
	oneOf("logging.format", c.Logging.Format, "json", "text")

	if strings.TrimSpace(c.Storage.DataDir) == "" {
		errs = append(errs, ValidationError{Field: "storage.data_dir", Message: "must not be empty"})
	}
	if strings.EqualFold(c.Storage.Backend, "sqlite") && strings.TrimSpace(c.Storage.SQLitePath) == "" {
		errs = append(errs, ValidationError{Field: "storage.sqlite_path", Message: "required for the sqlite backend"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields from Default and normalises enum casing.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaults.Storage.DataDir
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = defaults.Storage.SQLitePath
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.HistoryFile == "" {
		c.UI.HistoryFile = defaults.UI.HistoryFile
	}
	if c.UI.Prompt == "" {
		c.UI.Prompt = defaults.UI.Prompt
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}

	c.Storage.Backend = strings.ToLower(c.Storage.Backend)
	c.UI.Color = strings.ToLower(c.UI.Color)
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
}
