// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the propdesk command line: the interactive prompt,
// batch mode and the one-shot subcommands.
//
// # Commands
//
//   - propdesk: interactive prompt on a terminal, batch mode on piped input
//   - propdesk exec <line>: run one command (--json for a machine-readable response)
//   - propdesk export: write every book to Markdown, JSON or CSV
//   - propdesk config show|init: inspect or create the configuration file
//   - propdesk version: print version information
//
// # Exit Codes
//
//   - 0: success
//   - 1: a command failed or an unexpected error occurred
//   - 2: malformed command line or flags
//   - 3: configuration error
//
// All subcommands accept --config, --data-dir, --backend and --no-color.
package cli
