// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for propdesk.
//
// Configuration lives in a single TOML file with three sections:
//
//	[storage]   backend, data_dir, sqlite_path, watch
//	[ui]        color, show_meetings, history_file, prompt
//	[logging]   level, format, file
//
// # Configuration Precedence
//
// Later sources override earlier ones:
//   - Built-in defaults
//   - ~/.propdesk/config.toml, or the file passed with --config
//   - Environment variables (PROPDESK_*), including a ./.env file
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	store, err := storage.NewJSONStore(cfg.DataDir())
package config
