package tabs

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/skyshell/pkg/history"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// ErrEmptySnapshot is returned by Restore when there is nothing to restore.
var ErrEmptySnapshot = errors.New("tabs: empty snapshot")

// Snapshot is the persistable form of a Collection. Screens are stored as
// URLs and resolved again on restore.
type Snapshot struct {
	Active int           `json:"active" yaml:"active"`
	Tabs   []TabSnapshot `json:"tabs" yaml:"tabs"`
}

// TabSnapshot is one tab of a Snapshot.
type TabSnapshot struct {
	ID    int      `json:"id" yaml:"id"`
	Index int      `json:"index" yaml:"index"`
	URLs  []string `json:"urls" yaml:"urls"`
}

// Snapshot captures the tabs, their histories and the active index.
func (c *Collection) Snapshot() Snapshot {
	snap := Snapshot{Active: c.active, Tabs: make([]TabSnapshot, 0, len(c.tabs))}
	for _, t := range c.tabs {
		entries := t.history.Entries()
		ts := TabSnapshot{ID: t.ID, Index: t.history.Index(), URLs: make([]string, len(entries))}
		for i, s := range entries {
			ts.URLs[i] = s.URL
		}
		snap.Tabs = append(snap.Tabs, ts)
	}
	return snap
}

// Restore rebuilds a Collection from snap. Tabs with no URLs are skipped;
// out of range indexes are clamped. Tab IDs are kept so screen keys derived
// from them stay stable across restarts.
func Restore(router *routes.Router, homePath string, snap Snapshot) (*Collection, error) {
	if homePath == "" {
		homePath = "/"
	}
	c := &Collection{router: router, home: homePath}
	for _, ts := range snap.Tabs {
		if len(ts.URLs) == 0 {
			continue
		}
		screens := make([]history.Screen, len(ts.URLs))
		for i, u := range ts.URLs {
			screens[i] = c.screen(u)
		}
		h, err := history.Restore(screens, ts.Index)
		if err != nil {
			return nil, fmt.Errorf("tabs: restore tab %d: %w", ts.ID, err)
		}
		id := ts.ID
		if id <= c.nextID {
			id = c.nextID + 1
		}
		c.nextID = id
		c.tabs = append(c.tabs, newTab(id, h))
	}
	if len(c.tabs) == 0 {
		return nil, ErrEmptySnapshot
	}
	c.SetActiveTab(snap.Active)
	return c, nil
}
