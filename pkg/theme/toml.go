package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Bar    thTOMLBar    `toml:"bar"`
	Tabs   thTOMLTabs   `toml:"tabs"`
	Menu   thTOMLMenu   `toml:"menu"`
	Status thTOMLStatus `toml:"status"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLBar struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

type thTOMLTabs struct {
	Active   string `toml:"active"`
	Inactive string `toml:"inactive"`
}

type thTOMLMenu struct {
	Border   string `toml:"border"`
	Selected string `toml:"selected"`
}

type thTOMLStatus struct {
	Info  string `toml:"info"`
	Error string `toml:"error"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Bar:     tt.Bar.Background,
		BarText: tt.Bar.Text,

		TabActive:   tt.Tabs.Active,
		TabInactive: tt.Tabs.Inactive,

		MenuBorder:   tt.Menu.Border,
		MenuSelected: tt.Menu.Selected,

		StatusInfo:  tt.Status.Info,
		StatusError: tt.Status.Error,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme file and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	thRegister(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Bar:    thTOMLBar{Background: t.Bar, Text: t.BarText},
		Tabs:   thTOMLTabs{Active: t.TabActive, Inactive: t.TabInactive},
		Menu:   thTOMLMenu{Border: t.MenuBorder, Selected: t.MenuSelected},
		Status: thTOMLStatus{Info: t.StatusInfo, Error: t.StatusError},
		Help:   thTOMLHelp{Key: t.HelpKey, Desc: t.HelpDesc},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the name is set and every color is valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colors := []struct{ field, value string }{
		{"base.background", t.Background},
		{"base.foreground", t.Foreground},
		{"base.dim", t.Dim},
		{"base.accent", t.Accent},
		{"bar.background", t.Bar},
		{"bar.text", t.BarText},
		{"tabs.active", t.TabActive},
		{"tabs.inactive", t.TabInactive},
		{"menu.border", t.MenuBorder},
		{"menu.selected", t.MenuSelected},
		{"status.info", t.StatusInfo},
		{"status.error", t.StatusError},
		{"help.key", t.HelpKey},
		{"help.desc", t.HelpDesc},
	}

	for _, c := range colors {
		if c.value == "" {
			return fmt.Errorf("theme: missing required field %q", c.field)
		}
		if !thHexColorRegex.MatchString(c.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", c.value, c.field)
		}
	}

	return nil
}
