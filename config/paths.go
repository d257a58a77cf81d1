// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: On-disk location of the persisted settings file.
// Notes: Grounded on Options.getHomeFile/TERMINATOR_SETTINGS_FILENAME
// (".terminator-settings" directly under the user's home directory, not an
// XDG config subdirectory -- the original never adopted that convention and
// spec.md §6 names the dotfile literally).

package config

import (
	"os"
	"path/filepath"
)

const settingsFileName = ".terminator-settings"

func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, settingsFileName), nil
}
