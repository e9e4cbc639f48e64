// Package theme holds the color palettes of the shell and turns them into
// lipgloss styles.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Theme defines the color palette for the shell. All colors are hex strings
// such as "#1a1b26".
type Theme struct {
	Name string

	// Base colors
	Background string
	Foreground string
	Dim        string // placeholders, disabled buttons
	Accent     string // location icon, focused menu border

	// Top and bottom bars
	Bar     string
	BarText string

	// Tab selector
	TabActive   string
	TabInactive string

	// Menus (location, history, tabs)
	MenuBorder   string
	MenuSelected string

	// Status line
	StatusInfo  string
	StatusError string

	// Help
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return Default()
}

// Lookup returns a named theme and whether it is registered.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register validates t and adds it to the registry, replacing any theme of
// the same name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return fmt.Errorf("theme %q: %w", t.Name, err)
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
