package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "skyshell"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/skyshell/config.toml
//  2. each of $XDG_CONFIG_DIRS/skyshell/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	if p, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.toml")); err == nil {
		return LoadFromFile(p)
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	applyPreset(&cfg.Shell, func(key string) bool {
		return md.IsDefined("shell", key)
	})
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(xdg.StateHome, AppName, "skyshell.log"),
			DataDir:  filepath.Join(xdg.DataHome, AppName),
		},
		Shell: ShellConfig{
			Mode:           string(navstate.ModeTabbed),
			Home:           "/",
			CachedScreens:  5,
			RestoreSession: true,
			Mouse:          true,
		},
		Linking: LinkingConfig{
			Prefixes: append([]string(nil), navstate.DefaultPrefixes...),
			Socket:   DefaultSocketPath(),
			Listen:   true,
			Timeout:  Duration{2 * time.Second},
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// DefaultSocketPath returns the link socket path under the XDG runtime dir.
func DefaultSocketPath() string {
	return filepath.Join(xdg.RuntimeDir, AppName+".sock")
}

// SessionPath returns the session database path under DataDir.
func (c *Config) SessionPath() string {
	return filepath.Join(c.General.DataDir, "session.db")
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SKYSHELL_MODE"); v != "" {
		cfg.Shell.Mode = v
	}
	if v := os.Getenv("SKYSHELL_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("SKYSHELL_SOCKET"); v != "" {
		cfg.Linking.Socket = v
	}
	if v := os.Getenv("SKYSHELL_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("SKYSHELL_RESTORE_SESSION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Shell.RestoreSession = b
		}
	}
}
