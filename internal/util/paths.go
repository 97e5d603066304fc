// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file, path and text helpers shared by propdesk packages.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// AppDirName is the per-user directory holding config, data, logs and history.
const AppDirName = ".propdesk"

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without one are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// AppDir returns ~/.propdesk, falling back to ./.propdesk when the home
// directory is unknown.
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(home, AppDirName)
}
