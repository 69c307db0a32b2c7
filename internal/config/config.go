// Package config loads and stores CLI configuration in the XDG config dir.
// Flags passed on the command line take precedence over everything here;
// environment variables take precedence over the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	apperrors "basics/cli/internal/errors"
	"basics/cli/internal/xdg"
)

// Environment variables that override file settings.
const (
	EnvFormat   = "BASICS_FORMAT"
	EnvLogLevel = "BASICS_LOG_LEVEL"
	EnvPause    = "BASICS_PAUSE"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string `json:"log_level"`
	Format   string `json:"format"`
	Pause    bool   `json:"pause"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Config {
	return Config{LogLevel: "info", Format: "text"}
}

// Path returns the path to the config file. Nothing is created.
func Path() (string, error) {
	base, err := xdg.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, xdg.AppName, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Load never writes
// to disk. Environment overrides are applied even when the file cannot be
// read or decoded, in which case the error is returned alongside the config.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		c = Defaults()
	}
	c.applyEnvOverrides()
	if c.Format == "" {
		c.Format = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c, err
}

// LoadFile reads only the file, without environment overrides. A missing
// file yields defaults.
func LoadFile() (Config, error) {
	c := Defaults()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		// a config home that is not a directory holds no config either
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, apperrors.Wrap(apperrors.ConfigInvalid, "decode "+p, err)
	}
	return c, nil
}

// Keys lists the settings accepted by Set, in file order.
func Keys() []string { return []string{"log_level", "format", "pause"} }

// Set assigns value to the named setting.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "log_level":
		c.LogLevel = value
	case "format":
		c.Format = value
	case "pause":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.Wrap(apperrors.ConfigInvalid, "pause must be true or false", err)
		}
		c.Pause = b
	default:
		return apperrors.New(apperrors.ConfigInvalid,
			fmt.Sprintf("unknown setting %q (use %s)", key, strings.Join(Keys(), ", ")))
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		c.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPause)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Pause = b
		}
	}
}

// Save writes configuration with 0600 permissions, creating the config
// directory if needed. It returns the path written.
func Save(c Config) (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "config.json")
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return p, os.WriteFile(p, b, 0o600)
}
