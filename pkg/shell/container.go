package shell

import (
	"log/slog"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
)

// tabContainer presents the active tab of a collection as a
// navstate.Container. Sections map to their root routes; there is no
// separate stack per section, so switching a section pushes its root onto
// the active tab and PopToTop keeps the history as it is.
type tabContainer struct {
	tabs   *tabs.Collection
	mode   navstate.Mode
	ready  bool
	logger *slog.Logger
}

func (c *tabContainer) Ready() bool { return c.ready }

func (c *tabContainer) ActiveSection() navstate.Section {
	if c.mode == navstate.ModeFlat {
		return navstate.SectionFlat
	}
	return navstate.SectionFor(c.tabs.Active().Current().Target.Name())
}

func (c *tabContainer) Navigate(leaf navstate.Leaf) {
	path := leaf.URL
	if path == "" {
		p, err := c.tabs.Router().Build(leaf.Name, leaf.Params)
		if err != nil {
			c.logger.Warn("cannot build path", "route", leaf.Name, "error", err)
			return
		}
		path = p
	}
	if s, pushed := c.tabs.Navigate(path); pushed {
		c.logger.Debug("navigated", "tab", c.tabs.Active().ID, "url", s.URL, "route", s.Target.Name())
	}
}

func (c *tabContainer) SwitchSection(s navstate.Section) {
	c.Navigate(navstate.Leaf{Name: navstate.RootOf(s)})
}

func (c *tabContainer) PopToTop() {}
