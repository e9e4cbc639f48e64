// Package config provides TOML-based configuration for skyshell.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
)

// Config is the top-level configuration file.
type Config struct {
	General GeneralConfig `toml:"general"`
	Shell   ShellConfig   `toml:"shell"`
	Linking LinkingConfig `toml:"linking"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	DataDir  string `toml:"data_dir"`
}

// ShellConfig controls the navigation shell.
type ShellConfig struct {
	// Preset fills mode and cached_screens when they are not set explicitly.
	Preset string `toml:"preset"`
	// Mode is "tabbed" or "flat".
	Mode string `toml:"mode"`
	// Home is the path new tabs open at.
	Home string `toml:"home"`
	// CachedScreens is how many prior screens per tab stay mounted.
	CachedScreens  int  `toml:"cached_screens"`
	RestoreSession bool `toml:"restore_session"`
	Mouse          bool `toml:"mouse"`
}

// LinkingConfig controls external links.
type LinkingConfig struct {
	Prefixes []string `toml:"prefixes"`
	Socket   string   `toml:"socket"`
	// Listen starts the link socket server with the shell.
	Listen  bool     `toml:"listen"`
	Timeout Duration `toml:"timeout"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	// File is an optional TOML theme loaded before Name is looked up.
	File string `toml:"file"`
}

// NavMode returns the parsed navigation mode.
func (s ShellConfig) NavMode() navstate.Mode {
	m, err := navstate.ParseMode(s.Mode)
	if err != nil {
		return navstate.ModeTabbed
	}
	return m
}

// SlogLevel returns the configured log level, defaulting to info.
func (g GeneralConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("general.log_level: unknown level %q", c.General.LogLevel))
	}
	if _, err := navstate.ParseMode(c.Shell.Mode); err != nil {
		errs = append(errs, fmt.Errorf("shell.mode: %w", err))
	}
	if c.Shell.Preset != "" {
		if _, ok := presets[c.Shell.Preset]; !ok {
			errs = append(errs, fmt.Errorf("shell.preset: unknown preset %q", c.Shell.Preset))
		}
	}
	if !strings.HasPrefix(c.Shell.Home, "/") {
		errs = append(errs, fmt.Errorf("shell.home: %q must start with /", c.Shell.Home))
	}
	if c.Shell.CachedScreens < 0 {
		errs = append(errs, fmt.Errorf("shell.cached_screens: must not be negative, got %d", c.Shell.CachedScreens))
	}
	for i, p := range c.Linking.Prefixes {
		if p == "" {
			errs = append(errs, fmt.Errorf("linking.prefixes[%d]: empty prefix", i))
		}
	}
	if c.Linking.Timeout.Duration <= 0 {
		errs = append(errs, errors.New("linking.timeout: must be positive"))
	}

	return errors.Join(errs...)
}
