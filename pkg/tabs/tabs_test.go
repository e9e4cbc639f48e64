package tabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

func newTestCollection() *Collection {
	return New(routes.Default(), "/")
}

func TestNewHasOneActiveHomeTab(t *testing.T) {
	c := newTestCollection()

	if c.Len() != 1 {
		t.Fatalf("expected 1 tab, got %d", c.Len())
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("expected active=0, got %d", c.ActiveIndex())
	}
	if c.Active().Title() != "Home" {
		t.Errorf("expected title Home, got %q", c.Active().Title())
	}
}

func TestNewTabDoesNotActivate(t *testing.T) {
	c := newTestCollection()
	tab := c.NewTab("/search")

	if c.Len() != 2 {
		t.Fatalf("expected 2 tabs, got %d", c.Len())
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("NewTab changed active tab to %d", c.ActiveIndex())
	}
	if tab.Current().Target.Name() != routes.NameSearch {
		t.Errorf("new tab shows %q", tab.Current().Target.Name())
	}
	if tab.ID == c.Active().ID {
		t.Error("tab IDs must be distinct")
	}
}

func TestNavigateComparesCleanedPaths(t *testing.T) {
	c := newTestCollection()

	for _, p := range []string{"/search", "/search/", "search", "/search?q=go"} {
		c.Navigate(p)
	}
	if got := c.Active().History().Len(); got != 2 {
		t.Errorf("expected 2 entries, got %d", got)
	}
	if got := c.Active().Current().URL; got != "/search" {
		t.Errorf("expected the cleaned URL, got %q", got)
	}
	if _, pushed := c.Navigate("/"); !pushed {
		t.Error("expected a push back to home")
	}
}

func TestNavigatePushesOntoActiveTab(t *testing.T) {
	c := newTestCollection()
	c.NewTab("/")
	c.SetActiveTab(1)

	s, pushed := c.Navigate("/profile/alice.test")
	if !pushed {
		t.Fatal("expected a push")
	}
	if s.Target != (routes.Profile{Handle: "alice.test"}) {
		t.Errorf("unexpected target %#v", s.Target)
	}
	if c.Active().Title() != "@alice.test" {
		t.Errorf("title not refreshed: %q", c.Active().Title())
	}
	if c.Tabs()[0].CanGoBack() {
		t.Error("inactive tab history must be untouched")
	}
}

func TestNavigateToCurrentURLDoesNotDuplicate(t *testing.T) {
	c := newTestCollection()
	c.Navigate("/search")
	if _, pushed := c.Navigate("/search"); pushed {
		t.Error("navigating to the current URL should not push")
	}
	if c.Active().History().Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Active().History().Len())
	}
}

func TestTabBackForwardRefreshTitle(t *testing.T) {
	c := newTestCollection()
	c.Navigate("/search")

	tab := c.Active()
	if !tab.Back() || tab.Title() != "Home" {
		t.Errorf("after Back title = %q", tab.Title())
	}
	if !tab.Forward() || tab.Title() != "Search" {
		t.Errorf("after Forward title = %q", tab.Title())
	}
}

func TestCloseTab(t *testing.T) {
	tests := []struct {
		name       string
		tabs       int
		active     int
		close      int
		wantOK     bool
		wantLen    int
		wantActive int
	}{
		{"only tab refused", 1, 0, 0, false, 1, 0},
		{"out of range refused", 3, 0, 5, false, 3, 0},
		{"negative refused", 3, 0, -1, false, 3, 0},
		{"close before active shifts", 3, 2, 0, true, 2, 1},
		{"close after active keeps", 3, 0, 2, true, 2, 0},
		{"close active selects previous", 3, 1, 1, true, 2, 0},
		{"close active first stays first", 3, 0, 0, true, 2, 0},
		{"close active last selects new last", 3, 2, 2, true, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollection()
			for i := 1; i < tt.tabs; i++ {
				c.NewTab("/")
			}
			c.SetActiveTab(tt.active)

			ok := c.CloseTab(tt.close)
			if ok != tt.wantOK {
				t.Errorf("CloseTab(%d) = %v, want %v", tt.close, ok, tt.wantOK)
			}
			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			if c.ActiveIndex() != tt.wantActive {
				t.Errorf("ActiveIndex() = %d, want %d", c.ActiveIndex(), tt.wantActive)
			}
		})
	}
}

func TestCloseTabKeepsActiveTabIdentity(t *testing.T) {
	c := newTestCollection()
	c.NewTab("/search")
	third := c.NewTab("/notifications")
	c.SetActiveTab(2)

	c.CloseTab(0)
	if c.Active().ID != third.ID {
		t.Errorf("active tab changed identity: got %d want %d", c.Active().ID, third.ID)
	}
}

func TestSetActiveTabBounds(t *testing.T) {
	c := newTestCollection()
	if c.SetActiveTab(1) || c.SetActiveTab(-1) {
		t.Error("out of range SetActiveTab should fail")
	}
	c.NewTab("/")
	if !c.SetActiveTab(1) || c.ActiveIndex() != 1 {
		t.Error("SetActiveTab(1) should succeed")
	}
}

func TestNextPrevTabWrap(t *testing.T) {
	c := newTestCollection()
	c.NewTab("/")
	c.NewTab("/")

	c.PrevTab()
	if c.ActiveIndex() != 2 {
		t.Errorf("PrevTab from 0 should wrap to 2, got %d", c.ActiveIndex())
	}
	c.NextTab()
	if c.ActiveIndex() != 0 {
		t.Errorf("NextTab from 2 should wrap to 0, got %d", c.ActiveIndex())
	}
}

func TestIsCurrentScreen(t *testing.T) {
	c := newTestCollection()
	other := c.NewTab("/")
	c.Navigate("/search")
	id := c.Active().ID

	if !c.IsCurrentScreen(id, 1) {
		t.Error("expected entry 1 of the active tab to be current")
	}
	if c.IsCurrentScreen(id, 0) {
		t.Error("entry 0 is in the back list")
	}
	if c.IsCurrentScreen(other.ID, 0) {
		t.Error("inactive tab screens are never current")
	}
}

func TestSnapshotRestore(t *testing.T) {
	c := newTestCollection()
	c.Navigate("/search")
	c.Navigate("/profile/alice.test")
	c.Active().Back()
	second := c.NewTab("/notifications")
	c.SetActiveTab(1)

	snap := c.Snapshot()
	want := Snapshot{
		Active: 1,
		Tabs: []TabSnapshot{
			{ID: 1, Index: 1, URLs: []string{"/", "/search", "/profile/alice.test"}},
			{ID: second.ID, Index: 0, URLs: []string{"/notifications"}},
		},
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("Snapshot mismatch (-want +got):\n%s", diff)
	}

	restored, err := Restore(routes.Default(), "/", snap)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("restored snapshot mismatch (-want +got):\n%s", diff)
	}
	if restored.Active().Title() != "Notifications" {
		t.Errorf("restored active title = %q", restored.Active().Title())
	}

	// New tabs after a restore must not reuse IDs.
	fresh := restored.NewTab("/")
	if fresh.ID <= second.ID {
		t.Errorf("fresh tab ID %d collides with restored IDs", fresh.ID)
	}
}

func TestRestoreEmpty(t *testing.T) {
	if _, err := Restore(routes.Default(), "/", Snapshot{}); err != ErrEmptySnapshot {
		t.Errorf("expected ErrEmptySnapshot, got %v", err)
	}
	snap := Snapshot{Tabs: []TabSnapshot{{ID: 1, URLs: nil}}}
	if _, err := Restore(routes.Default(), "/", snap); err != ErrEmptySnapshot {
		t.Errorf("expected ErrEmptySnapshot for tabs without URLs, got %v", err)
	}
}
