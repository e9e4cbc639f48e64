package navstate

// Container is the presentation layer a Navigator drives.
type Container interface {
	// Ready reports whether the container is mounted and can take commands.
	Ready() bool
	// ActiveSection returns the section on display.
	ActiveSection() Section
	// Navigate shows leaf in the active section.
	Navigate(leaf Leaf)
	// SwitchSection makes s the active section, keeping its stack.
	SwitchSection(s Section)
	// PopToTop returns the active section to its root screen.
	PopToTop()
}

// Tree is an in-memory Container with one stack per section. The root of
// each stack is never popped and navigating to it again returns to it.
type Tree struct {
	mode    Mode
	stacks  []Stack
	index   int
	mounted bool
}

// NewTree builds an unmounted tree in mode with every section showing its
// root screen.
func NewTree(mode Mode) *Tree {
	t := &Tree{mode: mode}
	if mode == ModeFlat {
		t.stacks = []Stack{{Section: SectionFlat, Screens: []Leaf{rootLeaf(SectionFlat)}}}
		return t
	}
	t.mode = ModeTabbed
	for _, s := range tabbedSections {
		t.stacks = append(t.stacks, Stack{Section: s, Screens: []Leaf{rootLeaf(s)}})
	}
	return t
}

// Mount marks the tree ready.
func (t *Tree) Mount() { t.mounted = true }

// Unmount marks the tree not ready.
func (t *Tree) Unmount() { t.mounted = false }

// Ready implements Container.
func (t *Tree) Ready() bool { return t.mounted }

// Mode returns the layout mode.
func (t *Tree) Mode() Mode { return t.mode }

// ActiveSection implements Container.
func (t *Tree) ActiveSection() Section { return t.stacks[t.index].Section }

func (t *Tree) active() *Stack { return &t.stacks[t.index] }

func (t *Tree) find(s Section) int {
	for i := range t.stacks {
		if t.stacks[i].Section == s {
			return i
		}
	}
	return -1
}

// Navigate implements Container. In tabbed mode a section root switches to
// that section and pops it to the root. Navigating to the leaf already on
// top is a no-op.
func (t *Tree) Navigate(leaf Leaf) {
	if leaf.Params == nil {
		leaf.Params = map[string]string{}
	}
	if t.mode == ModeTabbed {
		for _, s := range tabbedSections {
			if RootOf(s) == leaf.Name {
				t.SwitchSection(s)
				t.PopToTop()
				return
			}
		}
	}
	st := t.active()
	if st.Screens[st.Index].Equal(leaf) {
		return
	}
	st.Screens = append(st.Screens[:st.Index+1], leaf)
	st.Index = len(st.Screens) - 1
}

// SwitchSection implements Container. Unknown sections are ignored.
func (t *Tree) SwitchSection(s Section) {
	if i := t.find(s); i >= 0 {
		t.index = i
	}
}

// PopToTop implements Container.
func (t *Tree) PopToTop() {
	st := t.active()
	st.Screens = st.Screens[:1]
	st.Index = 0
}

// Back pops the active stack. On a section root in tabbed mode it falls back
// to the Home section. It reports false when there is nowhere to go.
func (t *Tree) Back() bool {
	st := t.active()
	if st.Index > 0 {
		st.Screens = st.Screens[:st.Index]
		st.Index--
		return true
	}
	if t.mode == ModeTabbed && st.Section != SectionHome {
		t.SwitchSection(SectionHome)
		return true
	}
	return false
}

// Current returns the leaf on display.
func (t *Tree) Current() Leaf {
	st := t.active()
	return st.Screens[st.Index]
}

// State returns a copy of the tree.
func (t *Tree) State() State {
	s := State{Mode: t.mode, Index: t.index, Stacks: make([]Stack, len(t.stacks))}
	for i, st := range t.stacks {
		screens := make([]Leaf, len(st.Screens))
		for j, l := range st.Screens {
			l.Params = l.Params.Clone()
			screens[j] = l
		}
		s.Stacks[i] = Stack{Section: st.Section, Screens: screens, Index: st.Index}
	}
	return s
}

// Apply replaces the stacks named in s and activates the section s points
// at. A stack that does not start at its section root gets the root
// prepended so Back always has somewhere to land. Stacks of a different mode
// are ignored.
func (t *Tree) Apply(s State) {
	if s.Mode != t.mode {
		return
	}
	for i, st := range s.Stacks {
		at := t.find(st.Section)
		if at < 0 || len(st.Screens) == 0 {
			continue
		}
		screens := append([]Leaf(nil), st.Screens...)
		index := min(max(st.Index, 0), len(screens)-1)
		if screens[0].Name != RootOf(st.Section) {
			screens = append([]Leaf{rootLeaf(st.Section)}, screens...)
			index++
		}
		t.stacks[at] = Stack{Section: st.Section, Screens: screens, Index: index}
		if i == s.Index {
			t.index = at
		}
	}
}
