package config

import (
	"sort"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
)

// shellPreset is the part of ShellConfig a preset controls.
type shellPreset struct {
	Mode          navstate.Mode
	CachedScreens int
}

// presets maps a preset name to its settings.
//
//	mobile   tabbed sections, five cached screens per tab
//	web      one flat stack, five cached screens per tab
//	minimal  one flat stack, nothing cached
var presets = map[string]shellPreset{
	"mobile":  {Mode: navstate.ModeTabbed, CachedScreens: 5},
	"web":     {Mode: navstate.ModeFlat, CachedScreens: 5},
	"minimal": {Mode: navstate.ModeFlat, CachedScreens: 0},
}

// PresetNames returns the known preset names sorted alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// applyPreset fills the fields of s named by preset that isSet reports as not
// explicitly configured. Unknown presets are left for Validate to report.
func applyPreset(s *ShellConfig, isSet func(key string) bool) {
	p, ok := presets[s.Preset]
	if !ok {
		return
	}
	if !isSet("mode") {
		s.Mode = string(p.Mode)
	}
	if !isSet("cached_screens") {
		s.CachedScreens = p.CachedScreens
	}
}
