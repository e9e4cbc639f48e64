// Package shell is the browser-like chrome around the navigation core: a
// location bar, the screen area, a bottom bar and the tab, history and
// location menus, rendered with bubbletea.
package shell

import (
	"fmt"

	"gitlab.com/tinyland/lab/skyshell/pkg/history"
	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
)

// DefaultCacheSize is how many prior screens per tab stay mounted.
const DefaultCacheSize = 5

// ScreenDesc is one screen the shell keeps mounted.
type ScreenDesc struct {
	// Key is stable for a (tab, history position) pair.
	Key     string
	TabID   int
	Index   int
	Screen  history.Screen
	Visible bool
}

// Render is the set of mounted screens plus what the location bar shows.
type Render struct {
	Screens []ScreenDesc
	Icon    string
	Title   string
	URL     string
}

// Visible returns the descriptor of the screen on display.
func (r Render) Visible() (ScreenDesc, bool) {
	for _, d := range r.Screens {
		if d.Visible {
			return d, true
		}
	}
	return ScreenDesc{}, false
}

// ScreenKey is the mount key of history entry index of tab tabID.
func ScreenKey(tabID, index int) string {
	return fmt.Sprintf("t%d-s%d", tabID, index)
}

// Describe derives the mounted screen set from c: for every tab, up to
// cacheSize screens before its current one plus the current one. Only the
// active tab's current screen is visible.
func Describe(c *tabs.Collection, cacheSize int) Render {
	cacheSize = max(cacheSize, 0)

	var r Render
	for _, t := range c.Tabs() {
		h := t.History()
		for _, e := range h.BackList(cacheSize) {
			r.Screens = append(r.Screens, describeScreen(c, t.ID, e.Index, e.Screen))
		}
		r.Screens = append(r.Screens, describeScreen(c, t.ID, h.Index(), h.Current()))
	}

	cur := c.Active().Current()
	r.Icon = c.Router().Icon(cur.Target.Name())
	r.Title = c.Active().Title()
	r.URL = cur.URL
	return r
}

func describeScreen(c *tabs.Collection, tabID, index int, s history.Screen) ScreenDesc {
	return ScreenDesc{
		Key:     ScreenKey(tabID, index),
		TabID:   tabID,
		Index:   index,
		Screen:  s,
		Visible: c.IsCurrentScreen(tabID, index),
	}
}
