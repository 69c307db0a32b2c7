// Package xdg resolves XDG Base Directory paths for basics.
// It falls back to the traditional ~/.config location when XDG_CONFIG_HOME is
// not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "basics"

// ConfigHome returns the XDG config base directory without creating anything.
func ConfigHome() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// ConfigDir returns the XDG config directory for basics.
// The directory is created with private permissions (0700) if missing.
func ConfigDir() (string, error) {
	base, err := ConfigHome()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
