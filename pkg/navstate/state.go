// Package navstate bridges the flat path model of skyshell to the nested
// section/stack structure a presentation layer keeps.
//
// The structure has a fixed depth: a State holds one Stack per section and
// every Stack holds Leaf screens. There is no generic tree walk.
package navstate

import (
	"fmt"
	"maps"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// Mode selects how screens are grouped.
type Mode string

const (
	// ModeTabbed groups screens under Home, Search and Notifications
	// sections, each with its own stack. Used by the mobile layout.
	ModeTabbed Mode = "tabbed"
	// ModeFlat keeps every screen in one stack. Used by the web layout.
	ModeFlat Mode = "flat"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTabbed, ModeFlat:
		return Mode(s), nil
	case "":
		return ModeTabbed, nil
	}
	return "", fmt.Errorf("navstate: unknown mode %q (want tabbed or flat)", s)
}

// Section is a top-level stack.
type Section string

const (
	SectionHome          Section = "HomeTab"
	SectionSearch        Section = "SearchTab"
	SectionNotifications Section = "NotificationsTab"
	SectionFlat          Section = "Flat"
)

// tabbedSections is the order sections appear in the tabbed layout.
var tabbedSections = []Section{SectionHome, SectionNotifications, SectionSearch}

// SectionFor returns the tabbed section a route lives under.
func SectionFor(name routes.Name) Section {
	switch name {
	case routes.NameSearch:
		return SectionSearch
	case routes.NameNotifications:
		return SectionNotifications
	}
	return SectionHome
}

// RootOf returns the root screen of a section.
func RootOf(s Section) routes.Name {
	switch s {
	case SectionSearch:
		return routes.NameSearch
	case SectionNotifications:
		return routes.NameNotifications
	}
	return routes.NameHome
}

// Leaf is one screen in a stack. URL is the path the leaf was reached by,
// when known; it is not part of the leaf's identity.
type Leaf struct {
	Name   routes.Name   `json:"name" yaml:"name"`
	Params routes.Params `json:"params,omitempty" yaml:"params,omitempty"`
	URL    string        `json:"url,omitempty" yaml:"url,omitempty"`
}

// Equal reports whether two leaves name the same screen with the same params.
func (l Leaf) Equal(o Leaf) bool {
	return l.Name == o.Name && maps.Equal(l.Params, o.Params)
}

func rootLeaf(s Section) Leaf {
	return Leaf{Name: RootOf(s), Params: routes.Params{}}
}

// Stack is the screen stack of one section.
type Stack struct {
	Section Section `json:"section" yaml:"section"`
	Screens []Leaf  `json:"screens" yaml:"screens"`
	Index   int     `json:"index" yaml:"index"`
}

// State is the presentation tree: sections, their stacks and which section
// is active.
type State struct {
	Mode   Mode    `json:"mode" yaml:"mode"`
	Stacks []Stack `json:"stacks" yaml:"stacks"`
	Index  int     `json:"index" yaml:"index"`
}

// ActiveLeaf returns the leaf on display. It reports false when any index is
// out of range.
func (s State) ActiveLeaf() (Leaf, bool) {
	if s.Index < 0 || s.Index >= len(s.Stacks) {
		return Leaf{}, false
	}
	st := s.Stacks[s.Index]
	if st.Index < 0 || st.Index >= len(st.Screens) {
		return Leaf{}, false
	}
	return st.Screens[st.Index], true
}

// StateFromPath resolves path and wraps the resulting leaf in the stack the
// presentation layer expects: its section in tabbed mode, the single flat
// stack otherwise.
func StateFromPath(r *routes.Router, mode Mode, path string) State {
	name, params := r.MatchPath(path)
	leaf := Leaf{Name: name, Params: params, URL: path}

	section := SectionFlat
	if mode != ModeFlat {
		mode = ModeTabbed
		section = SectionFor(name)
	}
	return State{
		Mode:   mode,
		Stacks: []Stack{{Section: section, Screens: []Leaf{leaf}}},
	}
}

// PathFromState builds the path of the active leaf. Unknown or unbuildable
// leaves map to "/".
func PathFromState(r *routes.Router, s State) string {
	leaf, ok := s.ActiveLeaf()
	if !ok {
		return "/"
	}
	rt, ok := r.MatchName(leaf.Name)
	if !ok {
		return "/"
	}
	p, err := rt.Build(leaf.Params)
	if err != nil {
		return "/"
	}
	return p
}
