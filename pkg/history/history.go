// Package history implements the per-tab back/forward history of skyshell.
//
// A Stack behaves like a browser session history: pushing while somewhere
// in the middle discards the abandoned forward branch, while moving back
// and forward only moves the pointer.
package history

import (
	"errors"

	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// ErrEmpty is returned when restoring a stack with no entries.
var ErrEmpty = errors.New("history: no entries")

// Screen is one visited location. Screens are values and never change after
// NewScreen returns.
type Screen struct {
	Key    string        // unique per visit
	URL    string        // path as navigated to
	Target routes.Target // resolved route
	Title  string
}

// NewScreen creates a Screen with a fresh key.
func NewScreen(url string, target routes.Target, title string) Screen {
	return Screen{
		Key:    uuid.NewString(),
		URL:    url,
		Target: target,
		Title:  title,
	}
}

// Stack is an ordered list of screens with a current position. It always
// holds at least one screen.
type Stack struct {
	entries []Screen
	index   int
}

// New creates a Stack seeded with root.
func New(root Screen) *Stack {
	return &Stack{entries: []Screen{root}}
}

// Restore rebuilds a Stack from saved entries. The index is clamped into
// range.
func Restore(entries []Screen, index int) (*Stack, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	if index < 0 {
		index = 0
	}
	if index >= len(entries) {
		index = len(entries) - 1
	}
	return &Stack{entries: append([]Screen(nil), entries...), index: index}, nil
}

// Push drops everything after the current screen, appends s and makes it
// current.
func (h *Stack) Push(s Screen) {
	h.entries = append(h.entries[:h.index+1], s)
	h.index = len(h.entries) - 1
}

// Back moves one step back. It reports false when already at the oldest entry.
func (h *Stack) Back() bool {
	if !h.CanGoBack() {
		return false
	}
	h.index--
	return true
}

// Forward moves one step forward. It reports false when already at the
// newest entry.
func (h *Stack) Forward() bool {
	if !h.CanGoForward() {
		return false
	}
	h.index++
	return true
}

// GoTo moves the pointer to entry i without removing anything.
func (h *Stack) GoTo(i int) bool {
	if i < 0 || i >= len(h.entries) {
		return false
	}
	h.index = i
	return true
}

// Current returns the screen at the pointer.
func (h *Stack) Current() Screen {
	return h.entries[h.index]
}

// CanGoBack reports whether there is an entry before the pointer.
func (h *Stack) CanGoBack() bool {
	return h.index > 0
}

// CanGoForward reports whether there is an entry after the pointer.
func (h *Stack) CanGoForward() bool {
	return h.index < len(h.entries)-1
}

// BackList returns up to n screens before the pointer, oldest first, so the
// last element is the screen Back would show.
func (h *Stack) BackList(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := h.index - n
	if start < 0 {
		start = 0
	}
	out := make([]Entry, 0, h.index-start)
	for i := start; i < h.index; i++ {
		out = append(out, Entry{Index: i, Screen: h.entries[i]})
	}
	return out
}

// ForwardList returns up to n screens after the pointer, nearest first.
func (h *Stack) ForwardList(n int) []Entry {
	if n <= 0 {
		return nil
	}
	end := h.index + 1 + n
	if end > len(h.entries) {
		end = len(h.entries)
	}
	out := make([]Entry, 0, end-h.index-1)
	for i := h.index + 1; i < end; i++ {
		out = append(out, Entry{Index: i, Screen: h.entries[i]})
	}
	return out
}

// Entry pairs a screen with its position in the stack.
type Entry struct {
	Index  int
	Screen Screen
}

// Len returns the number of entries.
func (h *Stack) Len() int { return len(h.entries) }

// Index returns the pointer position.
func (h *Stack) Index() int { return h.index }

// Entries returns a copy of all screens, oldest first.
func (h *Stack) Entries() []Screen {
	return append([]Screen(nil), h.entries...)
}
