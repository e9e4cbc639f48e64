package shell

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// Click zone ids.
const (
	zoneLocation      = "location"
	zoneBack          = "back"
	zoneForward       = "forward"
	zoneHome          = "home"
	zoneSearch        = "search"
	zoneNotifications = "notifications"
	zoneTabs          = "tabs"
	zoneMenuPrefix    = "menu-"
)

// chromeHeight is the rows taken by the top bar, status line and bottom bar.
const chromeHeight = 3

// View renders the shell.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.container.ready {
		return "Initializing..."
	}

	areaH := max(m.height-chromeHeight, 1)
	var area string
	if m.overlay == OverlayNone {
		if s := m.visibleScreen(); s != nil {
			area = s.View(m.width, areaH)
		}
	} else {
		area = lipgloss.Place(m.width, areaH, lipgloss.Center, lipgloss.Center, m.viewOverlay())
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTopBar(),
		area,
		m.viewStatusLine(),
		m.viewBottomBar(),
	)
	return m.scan(out)
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

func (m Model) scan(s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Scan(s)
}

// viewTopBar shows the route icon, the tab title and the URL. The search
// section shows a placeholder instead of a title.
func (m Model) viewTopBar() string {
	st := m.styles
	r := Describe(m.tabs, 0)

	icon := st.LocationIcon.Render(" " + r.Icon + " ")
	var label string
	if navstate.SectionFor(m.tabs.Active().Current().Target.Name()) == navstate.SectionSearch {
		label = st.Placeholder.Render("Search")
	} else {
		label = st.Location.Render(r.Title)
	}
	url := st.TopBar.Render("  " + r.URL)
	if m.tabs.Len() > 1 {
		url += st.TopBar.Render(fmt.Sprintf("  [%d/%d]", m.tabs.ActiveIndex()+1, m.tabs.Len()))
	}

	line := ansi.Truncate(icon+label+url, m.width, "…")
	pad := max(m.width-lipgloss.Width(line), 0)
	return m.mark(zoneLocation, line+st.TopBar.Render(strings.Repeat(" ", pad)))
}

func (m Model) viewStatusLine() string {
	var line string
	switch {
	case m.status != "" && m.statusErr:
		line = m.styles.StatusError.Render(" " + m.status)
	case m.status != "":
		line = m.styles.StatusInfo.Render(" " + m.status)
	default:
		line = " " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return ansi.Truncate(line, m.width, "…")
}

// viewBottomBar draws the navigation buttons. Back and forward are dimmed
// when the active tab cannot move.
func (m Model) viewBottomBar() string {
	st := m.styles
	t := m.tabs.Active()

	button := func(id, label string, enabled bool) string {
		if !enabled {
			return st.ButtonDisabled.Render(label)
		}
		return m.mark(id, st.Button.Render(label))
	}

	section := navstate.SectionFor(t.Current().Target.Name())
	sectionButton := func(id, label string, s navstate.Section) string {
		if m.nav.Mode() == navstate.ModeTabbed && section == s {
			return m.mark(id, st.Button.Inherit(st.TabActive).Render(label))
		}
		return button(id, label, true)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		button(zoneBack, "← Back", t.CanGoBack()),
		button(zoneForward, "→ Fwd", t.CanGoForward()),
		sectionButton(zoneHome, m.router.Icon(routes.NameHome)+" Home", navstate.SectionHome),
		sectionButton(zoneSearch, m.router.Icon(routes.NameSearch)+" Search", navstate.SectionSearch),
		sectionButton(zoneNotifications, m.router.Icon(routes.NameNotifications)+" Alerts", navstate.SectionNotifications),
		button(zoneTabs, fmt.Sprintf("▦ %d", m.tabs.Len()), true),
	)
	bar = ansi.Truncate(bar, m.width, "")
	pad := max(m.width-lipgloss.Width(bar), 0)
	return bar + st.BottomBar.Render(strings.Repeat(" ", pad))
}

func (m Model) viewOverlay() string {
	st := m.styles
	switch m.overlay {
	case OverlayLocation:
		return st.Menu.Render(lipgloss.JoinVertical(lipgloss.Left,
			st.ScreenTitle.Render("Go to"),
			m.location.View(),
		))
	case OverlayHelp:
		return st.Menu.Render(m.help.FullHelpView(m.keys.FullHelp()))
	}

	var title string
	switch m.overlay {
	case OverlayTabs:
		title = "Tabs"
	case OverlayBack:
		title = "Back"
	case OverlayForward:
		title = "Forward"
	}

	items := m.menuItems()
	rows := []string{st.ScreenTitle.Render(title)}
	if len(items) == 0 {
		rows = append(rows, st.Dim.Render("Nothing here"))
	}
	for i, it := range items {
		row := st.MenuItem.Render("  " + it.label)
		if i == m.menuIndex {
			row = st.MenuSelected.Render("› " + it.label)
		}
		rows = append(rows, m.mark(fmt.Sprintf("%s%d", zoneMenuPrefix, i), row))
	}
	return st.Menu.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// handleMouse maps left clicks on the bars and menus to their actions.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	in := func(id string) bool {
		zi := m.zones.Get(id)
		return zi != nil && zi.InBounds(msg)
	}

	if m.overlay == OverlayTabs || m.overlay == OverlayBack || m.overlay == OverlayForward {
		for i := range m.menuItems() {
			if in(fmt.Sprintf("%s%d", zoneMenuPrefix, i)) {
				return m.activateMenuItem(i)
			}
		}
	}

	t := m.tabs.Active()
	switch {
	case in(zoneLocation):
		return m.openLocation()
	case in(zoneBack):
		t.Back()
	case in(zoneForward):
		t.Forward()
	case in(zoneHome):
		m.nav.ResetToRootTab(navstate.SectionHome)
	case in(zoneSearch):
		m.nav.ResetToRootTab(navstate.SectionSearch)
	case in(zoneNotifications):
		m.nav.ResetToRootTab(navstate.SectionNotifications)
	case in(zoneTabs):
		m.openMenu(OverlayTabs)
	}
	return nil
}
