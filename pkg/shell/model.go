package shell

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/skyshell/pkg/app"
	"gitlab.com/tinyland/lab/skyshell/pkg/history"
	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/screens"
	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
	"gitlab.com/tinyland/lab/skyshell/pkg/theme"
)

// statusTimeout is how long a status message stays in the bottom bar.
const statusTimeout = 4 * time.Second

// historyMenuSize caps the entries listed in the back and forward menus.
const historyMenuSize = 10

// Overlay is the menu drawn over the screen area, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLocation
	OverlayTabs
	OverlayBack
	OverlayForward
	OverlayHelp
)

// Options configures a Model.
type Options struct {
	Router *routes.Router
	// Tabs is a restored collection. When nil a fresh one opens at Home.
	Tabs      *tabs.Collection
	Home      string
	Mode      navstate.Mode
	Prefixes  []string
	CacheSize int
	Theme     theme.Theme
	// Mouse enables click zones on the bars and menus.
	Mouse bool
	// Links delivers external URLs, typically fed by the link socket.
	Links <-chan string
	// InitialURL is opened through the link handler once the shell is ready.
	InitialURL string
	Logger     *slog.Logger
}

// mounted is a live screen instance and the history screen it was built for.
type mounted struct {
	screenKey string
	screen    screens.Screen
}

// Model is the bubbletea model of the shell. The navigation state lives
// behind pointers so copies made by bubbletea share it.
type Model struct {
	router    *routes.Router
	tabs      *tabs.Collection
	container *tabContainer
	nav       *navstate.Navigator
	mounted   map[string]mounted
	cacheSize int

	styles   theme.Styles
	keys     keyMap
	help     help.Model
	location textinput.Model
	zones    *zone.Manager
	logger   *slog.Logger

	links      <-chan string
	initialURL string

	overlay   Overlay
	menuIndex int

	status    string
	statusErr bool
	statusSeq int

	width, height int
	quitting      bool
}

// New builds the shell model. It is not ready until the first window size
// arrives; links received before that are dropped.
func New(opts Options) Model {
	if opts.Router == nil {
		opts.Router = routes.Default()
	}
	if opts.Home == "" {
		opts.Home = "/"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default()
	}
	if opts.CacheSize < 0 {
		opts.CacheSize = 0
	}
	collection := opts.Tabs
	if collection == nil {
		collection = tabs.New(opts.Router, opts.Home)
	}
	mode := opts.Mode
	if mode == "" {
		mode = navstate.ModeTabbed
	}

	container := &tabContainer{tabs: collection, mode: mode, logger: opts.Logger}
	nav := navstate.NewNavigator(opts.Router, container, navstate.Options{
		Mode:     mode,
		Prefixes: opts.Prefixes,
		Logger:   opts.Logger,
	})

	styles := theme.NewStyles(opts.Theme)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter a path or link"
	ti.CharLimit = 512

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	m := Model{
		router:     opts.Router,
		tabs:       collection,
		container:  container,
		nav:        nav,
		mounted:    make(map[string]mounted),
		cacheSize:  opts.CacheSize,
		styles:     styles,
		keys:       defaultKeyMap(),
		help:       h,
		location:   ti,
		logger:     opts.Logger,
		links:      opts.Links,
		initialURL: opts.InitialURL,
	}
	if opts.Mouse {
		m.zones = zone.New()
	}
	m.syncMounted()
	return m
}

// Init starts listening for external links.
func (m Model) Init() tea.Cmd {
	return app.WaitForLink(m.links)
}

// Update handles incoming messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.location.Width = max(msg.Width-8, 10)
		if !m.container.ready {
			m.container.ready = true
			m.logger.Debug("shell ready", "width", msg.Width, "height", msg.Height)
			if m.initialURL != "" {
				cmd = m.handleLink(m.initialURL)
				m.initialURL = ""
			}
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case app.LinkEvent:
		cmd = tea.Batch(m.handleLink(msg.URL), app.WaitForLink(m.links))

	case app.LinkSourceClosedEvent:
		m.logger.Debug("link source closed")

	case app.NavigateEvent:
		cmd = m.navigateTo(msg.Target, msg.NewTab)

	case app.StatusEvent:
		cmd = m.setStatus(msg.Text, msg.Error)

	case app.ClearStatusEvent:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}

	default:
		if m.overlay == OverlayLocation {
			m.location, cmd = m.location.Update(msg)
		}
	}

	m.syncMounted()
	return m, cmd
}

// handleLink dispatches an external or typed URL through the navigator.
func (m *Model) handleLink(url string) tea.Cmd {
	if err := m.nav.HandleLink(url); err != nil {
		return m.setStatus(fmt.Sprintf("Cannot open %s", url), true)
	}
	return nil
}

// navigateTo shows t in the active tab or a new background tab.
func (m *Model) navigateTo(t routes.Target, newTab bool) tea.Cmd {
	if t == nil {
		return nil
	}
	if newTab {
		path, err := m.router.BuildTarget(t)
		if err != nil {
			m.logger.Warn("cannot open in new tab", "route", t.Name(), "error", err)
			return m.setStatus("Cannot open link", true)
		}
		m.tabs.NewTab(path)
		return m.setStatus(fmt.Sprintf("Opened %s in a new tab", m.router.Title(t)), false)
	}
	m.nav.Navigate(t)
	return nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return app.ClearStatusCmd(m.statusSeq, statusTimeout)
}

// handleKey routes a key press to the open overlay, the shell bindings or
// the visible screen, in that order.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	switch m.overlay {
	case OverlayLocation:
		return m.handleLocationKey(msg)
	case OverlayTabs, OverlayBack, OverlayForward:
		return m.handleMenuKey(msg)
	case OverlayHelp:
		if key.Matches(msg, m.keys.Cancel, m.keys.Help, m.keys.Quit) {
			m.overlay = OverlayNone
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.tabs.Active().Back()
	case key.Matches(msg, m.keys.Forward):
		m.tabs.Active().Forward()
	case key.Matches(msg, m.keys.BackMenu):
		m.openMenu(OverlayBack)
	case key.Matches(msg, m.keys.ForwardMenu):
		m.openMenu(OverlayForward)
	case key.Matches(msg, m.keys.Home):
		m.nav.ResetToRootTab(navstate.SectionHome)
	case key.Matches(msg, m.keys.Search):
		m.nav.ResetToRootTab(navstate.SectionSearch)
	case key.Matches(msg, m.keys.Notifications):
		m.nav.ResetToRootTab(navstate.SectionNotifications)
	case key.Matches(msg, m.keys.Settings):
		m.nav.Navigate(routes.Settings{})
	case key.Matches(msg, m.keys.Location):
		return m.openLocation()
	case key.Matches(msg, m.keys.Tabs):
		m.openMenu(OverlayTabs)
	case key.Matches(msg, m.keys.NewTab):
		m.tabs.NewTab("")
		m.tabs.SetActiveTab(m.tabs.Len() - 1)
	case key.Matches(msg, m.keys.CloseTab):
		return m.closeTab(m.tabs.ActiveIndex())
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.PrevTab()
	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
	default:
		if s := m.visibleScreen(); s != nil {
			return s.HandleKey(msg)
		}
	}
	return nil
}

func (m *Model) closeTab(i int) tea.Cmd {
	if !m.tabs.CloseTab(i) {
		return m.setStatus("Cannot close the last tab", true)
	}
	return nil
}

func (m *Model) openLocation() tea.Cmd {
	m.overlay = OverlayLocation
	m.location.SetValue(m.tabs.Active().Current().URL)
	m.location.CursorEnd()
	return m.location.Focus()
}

func (m *Model) handleLocationKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeOverlay()
		return nil
	case key.Matches(msg, m.keys.Select):
		value := strings.TrimSpace(m.location.Value())
		m.closeOverlay()
		if value == "" {
			return nil
		}
		return m.handleLink(locationToLink(value))
	}
	var cmd tea.Cmd
	m.location, cmd = m.location.Update(msg)
	return cmd
}

// locationToLink treats bare text typed into the location bar as a path.
func locationToLink(v string) string {
	if strings.HasPrefix(v, "/") || strings.Contains(v, "://") {
		return v
	}
	return "/" + v
}

func (m *Model) closeOverlay() {
	m.overlay = OverlayNone
	m.menuIndex = 0
	m.location.Blur()
}

// menuItem is one row of the tab or history menus.
type menuItem struct {
	label  string
	action func(m *Model) tea.Cmd
	// closeable rows can be removed with the Close binding.
	closeable bool
	tabIndex  int
}

func (m *Model) openMenu(o Overlay) {
	m.overlay = o
	m.menuIndex = 0
	if o == OverlayTabs {
		m.menuIndex = m.tabs.ActiveIndex()
	}
}

// menuItems returns the rows of the open menu.
func (m *Model) menuItems() []menuItem {
	switch m.overlay {
	case OverlayTabs:
		items := make([]menuItem, 0, m.tabs.Len()+1)
		for i, t := range m.tabs.Tabs() {
			marker := "  "
			if i == m.tabs.ActiveIndex() {
				marker = "● "
			}
			icon := m.router.Icon(t.Current().Target.Name())
			items = append(items, menuItem{
				label:     fmt.Sprintf("%s%s %s", marker, icon, t.Title()),
				closeable: true,
				tabIndex:  i,
				action: func(m *Model) tea.Cmd {
					m.tabs.SetActiveTab(i)
					return nil
				},
			})
		}
		items = append(items, menuItem{
			label: "+ New tab",
			action: func(m *Model) tea.Cmd {
				m.tabs.NewTab("")
				m.tabs.SetActiveTab(m.tabs.Len() - 1)
				return nil
			},
		})
		return items

	case OverlayBack, OverlayForward:
		h := m.tabs.Active().History()
		var entries []history.Entry
		if m.overlay == OverlayBack {
			entries = h.BackList(historyMenuSize)
			// Nearest first.
			for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
				entries[i], entries[j] = entries[j], entries[i]
			}
		} else {
			entries = h.ForwardList(historyMenuSize)
		}
		items := make([]menuItem, len(entries))
		for n, e := range entries {
			index := e.Index
			items[n] = menuItem{
				label: fmt.Sprintf("%s %s", m.router.Icon(e.Screen.Target.Name()), e.Screen.Title),
				action: func(m *Model) tea.Cmd {
					m.tabs.Active().GoTo(index)
					return nil
				},
			}
		}
		return items
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	items := m.menuItems()
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.closeOverlay()
	case key.Matches(msg, m.keys.Up):
		m.menuIndex = max(m.menuIndex-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menuIndex = min(m.menuIndex+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Select):
		return m.activateMenuItem(m.menuIndex)
	case key.Matches(msg, m.keys.Close):
		if m.menuIndex < len(items) && items[m.menuIndex].closeable {
			cmd := m.closeTab(items[m.menuIndex].tabIndex)
			m.menuIndex = min(m.menuIndex, m.tabs.Len()-1)
			return cmd
		}
	}
	return nil
}

func (m *Model) activateMenuItem(i int) tea.Cmd {
	items := m.menuItems()
	if i < 0 || i >= len(items) {
		m.closeOverlay()
		return nil
	}
	m.closeOverlay()
	return items[i].action(m)
}

// syncMounted mounts screens that entered the render set, rebuilds those
// whose history entry was replaced and drops the rest.
func (m *Model) syncMounted() {
	r := Describe(m.tabs, m.cacheSize)
	keep := make(map[string]bool, len(r.Screens))
	for _, d := range r.Screens {
		keep[d.Key] = true
		if cur, ok := m.mounted[d.Key]; ok && cur.screenKey == d.Screen.Key {
			continue
		}
		m.mounted[d.Key] = mounted{
			screenKey: d.Screen.Key,
			screen:    screens.New(d.Screen.Target, d.Screen.Title, m.styles),
		}
	}
	for k := range m.mounted {
		if !keep[k] {
			delete(m.mounted, k)
		}
	}
}

func (m *Model) visibleScreen() screens.Screen {
	t := m.tabs.Active()
	if s, ok := m.mounted[ScreenKey(t.ID, t.History().Index())]; ok {
		return s.screen
	}
	return nil
}

// Collection returns the tab collection the shell drives.
func (m Model) Collection() *tabs.Collection { return m.tabs }

// Navigator returns the navigation context bound to this shell.
func (m Model) Navigator() *navstate.Navigator { return m.nav }

// Snapshot captures the tabs for session persistence.
func (m Model) Snapshot() tabs.Snapshot { return m.tabs.Snapshot() }

// Ready reports whether the shell has been sized and accepts navigation.
func (m Model) Ready() bool { return m.container.ready }

// Overlay returns the open overlay.
func (m Model) Overlay() Overlay { return m.overlay }

// Status returns the status line text and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// MountedKeys returns the keys of the mounted screens, sorted.
func (m Model) MountedKeys() []string {
	keys := make([]string, 0, len(m.mounted))
	for k := range m.mounted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }
