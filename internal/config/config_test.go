// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "json" {
		t.Errorf("Storage.Backend = %q, want json", cfg.Storage.Backend)
	}
	if !cfg.Storage.Watch {
		t.Error("Storage.Watch should default to true")
	}
	if cfg.UI.Prompt != "propdesk> " {
		t.Errorf("UI.Prompt = %q", cfg.UI.Prompt)
	}
	if !cfg.UI.ShowMeetings {
		t.Error("UI.ShowMeetings should default to true")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if strings.HasPrefix(cfg.DataDir(), "~") {
		t.Errorf("DataDir() should expand ~, got %q", cfg.DataDir())
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    func() *Config
		wantErr   bool
		wantField []string
	}{
		{
			name:   "default config",
			config: Default,
		},
		{
			name: "sqlite backend",
			config: func() *Config {
				c := Default()
				c.Storage.Backend = "sqlite"
				return c
			},
		},
		{
			name: "enums are case-insensitive",
			config: func() *Config {
				c := Default()
				c.UI.Color = "NEVER"
				c.Logging.Level = "Debug"
				return c
			},
		},
		{
			name: "unknown backend",
			config: func() *Config {
				c := Default()
				c.Storage.Backend = "postgres"
				return c
			},
			wantErr:   true,
			wantField: []string{"storage.backend"},
		},
		{
			name: "sqlite without path",
			config: func() *Config {
				c := Default()
				c.Storage.Backend = "sqlite"
				c.Storage.SQLitePath = ""
				return c
			},
			wantErr:   true,
			wantField: []string{"storage.sqlite_path"},
		},
		{
			name: "every bad field is reported",
			config: func() *Config {
				c := Default()
				c.UI.Color = "sometimes"
				c.Logging.Level = "verbose"
				c.Logging.Format = "xml"
				c.Storage.DataDir = " "
				return c
			},
			wantErr:   true,
			wantField: []string{"ui.color", "logging.level", "logging.format", "storage.data_dir"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config().Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidateErrors, got %T", err)
			}
			if len(verrs) != len(tt.wantField) {
				t.Fatalf("got %d errors (%v), want %d", len(verrs), err, len(tt.wantField))
			}
			for i, field := range tt.wantField {
				if verrs[i].Field != field {
					t.Errorf("error %d field = %q, want %q", i, verrs[i].Field, field)
				}
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Backend = "SQLITE"
	cfg.SetDefaults()

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.DataDir != Default().Storage.DataDir {
		t.Errorf("DataDir = %q", cfg.Storage.DataDir)
	}
	if cfg.UI.Prompt == "" || cfg.Logging.Level != "info" {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("Backend = %q", cfg.Storage.Backend)
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
backend = "sqlite"
data_dir = "/srv/propdesk"

[ui]
show_meetings = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PROPDESK_DATA_DIR", "/tmp/override")
	t.Setenv("PROPDESK_LOG_LEVEL", "DEBUG")
	t.Setenv("PROPDESK_WATCH", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite from file", cfg.Storage.Backend)
	}
	if cfg.Storage.DataDir != "/tmp/override" {
		t.Errorf("DataDir = %q, want env override", cfg.Storage.DataDir)
	}
	if cfg.UI.ShowMeetings {
		t.Error("ShowMeetings should be false from file")
	}
	if cfg.Storage.Watch {
		t.Error("Watch should be false from env")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.UI.Prompt != "propdesk> " {
		t.Errorf("Prompt = %q, want default", cfg.UI.Prompt)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "malformed toml", content: "[storage\nbackend = "},
		{name: "unknown key", content: "[storage]\nbacknd = \"json\"\n"},
		{name: "invalid value", content: "[ui]\ncolor = \"purple\"\n"},
		{name: "invalid env value", env: map[string]string{"PROPDESK_COLOR": "rainbow"}},
		{name: "unparseable env bool", env: map[string]string{"PROPDESK_WATCH": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.UI.Color = "never"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# propdesk configuration file") {
		t.Errorf("missing header:\n%s", data)
	}

	loaded := Default()
	if err := LoadTOML(loaded, path); err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}
	if loaded.Storage.Backend != "sqlite" || loaded.UI.Color != "never" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Storage.DataDir != "~/.propdesk/data" {
		t.Errorf("DataDir = %q, ~ should be kept on disk", loaded.Storage.DataDir)
	}
}
