// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file, path and text helpers shared by propdesk packages.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe replace of a whole file with fsync
//
// Paths:
//   - ExpandHome: "~" expansion for configured paths
//   - AppDir: the per-user ~/.propdesk directory
//
// Text:
//   - Width, PadRight, Truncate: terminal-cell aware sizing for tables
//
// # Usage
//
//	err := util.AtomicWriteFile(util.ExpandHome("~/.propdesk/data/clientbook.json"), data, 0644)
//	cell := util.PadRight(util.Truncate(name, 20), 20)
package util
