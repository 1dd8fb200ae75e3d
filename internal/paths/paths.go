// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "umbra"

// ConfigDir returns the directory holding the umbra config file.
// Respects XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(home, ".config", appDir)
}

// ConfigFile returns the path to the umbra config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory holding mutable state such as the
// preference database. Respects XDG_STATE_HOME, falling back to
// ~/.local/state.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(home, ".local", "state", appDir)
}

// StateDBPath returns the path to the preference database inside dir,
// using StateDir when dir is empty.
func StateDBPath(dir string) string {
	if dir == "" {
		dir = StateDir()
	}
	return filepath.Join(dir, "umbra.db")
}
