package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
)

// setupTestStore creates a temporary store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "session.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestLoadEmpty(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ok {
		t.Error("expected no snapshot in a fresh store")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	want := tabs.Snapshot{
		Active: 1,
		Tabs: []tabs.TabSnapshot{
			{ID: 1, Index: 1, URLs: []string{"/", "/search", "/profile/alice.test"}},
			{ID: 4, Index: 0, URLs: []string{"/notifications"}},
		},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, ok, err := s.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplacesPrevious(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first := tabs.Snapshot{Tabs: []tabs.TabSnapshot{
		{ID: 1, URLs: []string{"/"}},
		{ID: 2, URLs: []string{"/search"}},
	}}
	second := tabs.Snapshot{Tabs: []tabs.TabSnapshot{
		{ID: 7, URLs: []string{"/settings"}},
	}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("expected only the second snapshot (-want +got):\n%s", diff)
	}
}

func TestCollectionSurvivesStore(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	r := routes.Default()

	c := tabs.New(r, "/")
	c.Navigate("/profile/alice.test/post/3k2")
	c.NewTab("/notifications")
	c.SetActiveTab(1)

	if err := s.Save(ctx, c.Snapshot()); err != nil {
		t.Fatal(err)
	}
	snap, _, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := tabs.Restore(r, "/", snap)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if restored.Active().Title() != "Notifications" {
		t.Errorf("active title = %q", restored.Active().Title())
	}
	if restored.Tabs()[0].Current().Target != (routes.PostThread{Handle: "alice.test", Rkey: "3k2"}) {
		t.Errorf("first tab target = %#v", restored.Tabs()[0].Current().Target)
	}
}

func TestClear(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, tabs.Snapshot{Tabs: []tabs.TabSnapshot{{ID: 1, URLs: []string{"/"}}}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if _, ok, _ := s.Load(ctx); ok {
		t.Error("expected no snapshot after Clear")
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	want := tabs.Snapshot{Tabs: []tabs.TabSnapshot{{ID: 3, URLs: []string{"/support"}}}}
	if err := s.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok, err := s.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() after reopen = ok %v, err %v", ok, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
