package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Shell.NavMode() != navstate.ModeTabbed {
		t.Errorf("expected tabbed default, got %q", cfg.Shell.Mode)
	}
	if cfg.Shell.CachedScreens != 5 {
		t.Errorf("expected 5 cached screens, got %d", cfg.Shell.CachedScreens)
	}
	if len(cfg.Linking.Prefixes) != 2 {
		t.Errorf("expected default prefixes, got %v", cfg.Linking.Prefixes)
	}
}

func TestLoadFromReader(t *testing.T) {
	src := `
[general]
log_level = "debug"

[shell]
mode = "flat"
home = "/notifications"
cached_screens = 2

[linking]
prefixes = ["bsky://"]
timeout = "750ms"

[theme]
name = "nord"
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.General.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.General.SlogLevel())
	}
	if cfg.Shell.NavMode() != navstate.ModeFlat {
		t.Errorf("expected flat mode, got %q", cfg.Shell.Mode)
	}
	if cfg.Shell.Home != "/notifications" || cfg.Shell.CachedScreens != 2 {
		t.Errorf("shell section not decoded: %+v", cfg.Shell)
	}
	if cfg.Linking.Timeout.Duration != 750*time.Millisecond {
		t.Errorf("expected 750ms timeout, got %v", cfg.Linking.Timeout)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("expected nord theme, got %q", cfg.Theme.Name)
	}
	// Unset values keep their defaults.
	if !cfg.Shell.RestoreSession {
		t.Error("restore_session default lost")
	}
}

func TestLoadFromReaderSyntaxError(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("[shell\nmode=")); err == nil {
		t.Error("expected decode error")
	}
}

func TestPresetFillsUnsetFields(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("[shell]\npreset = \"minimal\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Shell.NavMode() != navstate.ModeFlat || cfg.Shell.CachedScreens != 0 {
		t.Errorf("minimal preset not applied: %+v", cfg.Shell)
	}
}

func TestPresetDoesNotOverrideExplicitFields(t *testing.T) {
	src := "[shell]\npreset = \"web\"\nmode = \"tabbed\"\n"
	cfg, err := LoadFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Shell.NavMode() != navstate.ModeTabbed {
		t.Errorf("explicit mode overridden by preset: %q", cfg.Shell.Mode)
	}
	if cfg.Shell.CachedScreens != 5 {
		t.Errorf("expected web preset cached_screens 5, got %d", cfg.Shell.CachedScreens)
	}
}

func TestPresetNames(t *testing.T) {
	got := strings.Join(PresetNames(), ",")
	if got != "minimal,mobile,web" {
		t.Errorf("PresetNames() = %s", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SKYSHELL_MODE", "flat")
	t.Setenv("SKYSHELL_THEME", "dracula")
	t.Setenv("SKYSHELL_SOCKET", "/tmp/sky-test.sock")
	t.Setenv("SKYSHELL_LOG_LEVEL", "warn")
	t.Setenv("SKYSHELL_RESTORE_SESSION", "false")

	cfg, err := LoadFromReader(strings.NewReader("[shell]\nmode = \"tabbed\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	if cfg.Shell.Mode != "flat" {
		t.Errorf("SKYSHELL_MODE not applied: %q", cfg.Shell.Mode)
	}
	if cfg.Theme.Name != "dracula" {
		t.Errorf("SKYSHELL_THEME not applied: %q", cfg.Theme.Name)
	}
	if cfg.Linking.Socket != "/tmp/sky-test.sock" {
		t.Errorf("SKYSHELL_SOCKET not applied: %q", cfg.Linking.Socket)
	}
	if cfg.General.SlogLevel() != slog.LevelWarn {
		t.Errorf("SKYSHELL_LOG_LEVEL not applied: %q", cfg.General.LogLevel)
	}
	if cfg.Shell.RestoreSession {
		t.Error("SKYSHELL_RESTORE_SESSION not applied")
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Shell.Home != "/" {
		t.Errorf("expected default home, got %q", cfg.Shell.Home)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nname = \"gruvbox\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Theme.Name != "gruvbox" {
		t.Errorf("expected gruvbox, got %q", cfg.Theme.Name)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.LogLevel = "loud"
	cfg.Shell.Mode = "stacked"
	cfg.Shell.Home = "search"
	cfg.Shell.CachedScreens = -1
	cfg.Shell.Preset = "tablet"
	cfg.Linking.Prefixes = []string{"bsky://", ""}
	cfg.Linking.Timeout = Duration{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, field := range []string{
		"general.log_level", "shell.mode", "shell.home", "shell.cached_screens",
		"shell.preset", "linking.prefixes[1]", "linking.timeout",
	} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"2s", 2 * time.Second, false},
		{"", 0, false},
		{"-1s", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
}

func TestDurationFromTOML(t *testing.T) {
	tests := []struct {
		body    string
		want    time.Duration
		wantErr bool
	}{
		{`timeout = "3s"`, 3 * time.Second, false},
		{`timeout = 1500`, 1500 * time.Millisecond, false},
		{`timeout = -5`, 0, true},
		{`timeout = true`, 0, true},
	}
	for _, tt := range tests {
		cfg, err := LoadFromReader(strings.NewReader("[linking]\n" + tt.body + "\n"))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: error = %v, wantErr %v", tt.body, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && cfg.Linking.Timeout.Duration != tt.want {
			t.Errorf("%s: got %v, want %v", tt.body, cfg.Linking.Timeout.Duration, tt.want)
		}
	}
}

func TestSessionPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/var/lib/sky"
	if got := cfg.SessionPath(); got != "/var/lib/sky/session.db" {
		t.Errorf("SessionPath() = %q", got)
	}
}
