package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration read from TOML either as a Go duration string
// ("750ms", "2s") or as an integer number of milliseconds.
type Duration struct {
	time.Duration
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("negative duration %dms", v)
		}
		d.Duration = time.Duration(v) * time.Millisecond
		return nil
	}
	return fmt.Errorf("duration must be a string or milliseconds, got %T", v)
}

// UnmarshalText parses a Go duration string. Empty means zero.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = parsed
	return nil
}

// MarshalText writes the duration in Go notation.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
