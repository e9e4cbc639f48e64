// Package tabs holds the set of independent navigation tabs of the shell.
package tabs

import (
	"gitlab.com/tinyland/lab/skyshell/pkg/history"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// Tab is one navigation context with its own history.
type Tab struct {
	ID int

	history *history.Stack
	title   string
}

func newTab(id int, h *history.Stack) *Tab {
	t := &Tab{ID: id, history: h}
	t.refresh()
	return t
}

// Title is the title of the current screen.
func (t *Tab) Title() string { return t.title }

// Current returns the screen the tab is showing.
func (t *Tab) Current() history.Screen { return t.history.Current() }

// History exposes the stack for read-only queries such as BackList.
func (t *Tab) History() *history.Stack { return t.history }

// CanGoBack reports whether Back would move.
func (t *Tab) CanGoBack() bool { return t.history.CanGoBack() }

// CanGoForward reports whether Forward would move.
func (t *Tab) CanGoForward() bool { return t.history.CanGoForward() }

// Back moves the tab one step back.
func (t *Tab) Back() bool {
	ok := t.history.Back()
	t.refresh()
	return ok
}

// Forward moves the tab one step forward.
func (t *Tab) Forward() bool {
	ok := t.history.Forward()
	t.refresh()
	return ok
}

// GoTo jumps to history entry i.
func (t *Tab) GoTo(i int) bool {
	ok := t.history.GoTo(i)
	t.refresh()
	return ok
}

func (t *Tab) push(s history.Screen) {
	t.history.Push(s)
	t.refresh()
}

func (t *Tab) refresh() {
	t.title = t.history.Current().Title
}

// Collection is the ordered set of tabs plus which one is active. It always
// holds at least one tab.
type Collection struct {
	router *routes.Router
	home   string
	tabs   []*Tab
	active int
	nextID int
}

// New creates a collection with a single active tab showing homePath.
func New(router *routes.Router, homePath string) *Collection {
	if homePath == "" {
		homePath = "/"
	}
	c := &Collection{router: router, home: homePath}
	c.NewTab(homePath)
	return c
}

// Router returns the router paths are resolved with.
func (c *Collection) Router() *routes.Router { return c.router }

// Home returns the path new tabs open at by default.
func (c *Collection) Home() string { return c.home }

func (c *Collection) screen(url string) history.Screen {
	url = routes.CleanPath(url)
	target := c.router.Resolve(url)
	return history.NewScreen(url, target, c.router.Title(target))
}

// NewTab appends a tab seeded with initialPath. The active tab does not
// change.
func (c *Collection) NewTab(initialPath string) *Tab {
	if initialPath == "" {
		initialPath = c.home
	}
	c.nextID++
	t := newTab(c.nextID, history.New(c.screen(initialPath)))
	c.tabs = append(c.tabs, t)
	return t
}

// CloseTab removes the tab at i. Closing the only tab or an index out of
// range is refused. When the active tab is closed the previous tab becomes
// active.
func (c *Collection) CloseTab(i int) bool {
	if len(c.tabs) <= 1 || i < 0 || i >= len(c.tabs) {
		return false
	}
	c.tabs = append(c.tabs[:i], c.tabs[i+1:]...)
	switch {
	case i < c.active:
		c.active--
	case i == c.active && c.active > 0:
		c.active--
	}
	return true
}

// SetActiveTab makes tab i current. Histories are untouched.
func (c *Collection) SetActiveTab(i int) bool {
	if i < 0 || i >= len(c.tabs) {
		return false
	}
	c.active = i
	return true
}

// NextTab activates the following tab, wrapping to the first.
func (c *Collection) NextTab() {
	c.active = (c.active + 1) % len(c.tabs)
}

// PrevTab activates the preceding tab, wrapping to the last.
func (c *Collection) PrevTab() {
	c.active = (c.active - 1 + len(c.tabs)) % len(c.tabs)
}

// Navigate resolves path and pushes it onto the active tab. Navigating to
// the URL already shown keeps the current screen and reports false.
// Paths are compared after cleaning.
func (c *Collection) Navigate(path string) (history.Screen, bool) {
	t := c.Active()
	path = routes.CleanPath(path)
	if t.Current().URL == path {
		return t.Current(), false
	}
	s := c.screen(path)
	t.push(s)
	return s, true
}

// Active returns the active tab.
func (c *Collection) Active() *Tab { return c.tabs[c.active] }

// ActiveIndex returns the position of the active tab.
func (c *Collection) ActiveIndex() int { return c.active }

// Tabs returns the tabs in order. The slice is a copy; the tabs are shared.
func (c *Collection) Tabs() []*Tab {
	return append([]*Tab(nil), c.tabs...)
}

// Len returns the number of tabs.
func (c *Collection) Len() int { return len(c.tabs) }

// IsCurrentScreen reports whether history entry index of tab tabID is the
// screen on display.
func (c *Collection) IsCurrentScreen(tabID, index int) bool {
	t := c.Active()
	return t.ID == tabID && t.history.Index() == index
}
