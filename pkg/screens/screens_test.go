package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/skyshell/pkg/app"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/theme"
)

func newPage(t routes.Target) *Page {
	r := routes.Default()
	return New(t, r.Title(t), theme.NewStyles(theme.Default()))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEveryRouteHasContent(t *testing.T) {
	r := routes.Default()
	for _, rt := range r.Routes() {
		params := routes.Params{}
		for _, v := range rt.Vars() {
			params[v] = "x"
		}
		path, err := rt.Build(params)
		if err != nil {
			t.Fatalf("Build(%s): %v", rt.Name, err)
		}
		p := newPage(r.Resolve(path))
		if len(p.body) == 0 {
			t.Errorf("%s has no body", rt.Name)
		}
	}
	if p := newPage(routes.NotFound{Path: "/nope"}); !strings.Contains(p.View(80, 10), "/nope") {
		t.Error("NotFound page should show the missing path")
	}
}

func TestViewFillsExactHeight(t *testing.T) {
	p := newPage(routes.Profile{Handle: "alice.test"})

	out := p.View(40, 12)
	if n := strings.Count(out, "\n") + 1; n != 12 {
		t.Errorf("expected 12 lines, got %d", n)
	}
	if !strings.Contains(out, "@alice.test") {
		t.Errorf("expected title in view:\n%s", out)
	}
	if p.View(0, 10) != "" || p.View(10, 0) != "" {
		t.Error("zero-sized view should be empty")
	}
}

func TestSelectionAndEnter(t *testing.T) {
	p := newPage(routes.Profile{Handle: "alice.test"})
	if p.Selected() != 0 {
		t.Fatalf("expected first link selected, got %d", p.Selected())
	}

	p.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	p.HandleKey(runeKey('j'))
	p.HandleKey(runeKey('j')) // clamps at the last link
	if p.Selected() != 2 {
		t.Errorf("expected selection 2, got %d", p.Selected())
	}
	p.HandleKey(runeKey('k'))

	cmd := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a link should return a command")
	}
	ev, ok := cmd().(app.NavigateEvent)
	if !ok {
		t.Fatalf("expected NavigateEvent, got %T", cmd())
	}
	if ev.Target != (routes.ProfileFollows{Handle: "alice.test"}) {
		t.Errorf("unexpected target %#v", ev.Target)
	}

	ev, _ = p.HandleKey(runeKey('o'))().(app.NavigateEvent)
	if !ev.NewTab {
		t.Error("o should open in a new tab")
	}
}

func TestEnterWithoutLinks(t *testing.T) {
	p := newPage(routes.PrivacyPolicy{})
	if p.Selected() != -1 {
		t.Errorf("expected no selection, got %d", p.Selected())
	}
	if cmd := p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter without links should do nothing")
	}
}

func TestScrollFollowsSelection(t *testing.T) {
	p := newPage(routes.Profile{Handle: "alice.test"})
	p.View(40, 3)

	p.HandleKey(runeKey('G'))
	if p.Selected() != 2 {
		t.Fatalf("G should select the last link, got %d", p.Selected())
	}
	out := p.View(40, 3)
	if !strings.Contains(out, "Latest post") {
		t.Errorf("selected link scrolled out of view:\n%s", out)
	}

	p.HandleKey(runeKey('g'))
	if p.Offset() != 0 || p.Selected() != 0 {
		t.Errorf("g should return to the top, offset=%d selected=%d", p.Offset(), p.Selected())
	}
}

func TestScrollPositionSurvivesRerender(t *testing.T) {
	p := newPage(routes.Settings{})
	p.View(40, 4)
	p.HandleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	before := p.Offset()
	if before == 0 {
		t.Fatal("pgdown should scroll")
	}

	p.View(40, 4)
	if p.Offset() != before {
		t.Errorf("offset changed across renders: %d -> %d", before, p.Offset())
	}
}
