package shell

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Back          key.Binding
	Forward       key.Binding
	BackMenu      key.Binding
	ForwardMenu   key.Binding
	Home          key.Binding
	Search        key.Binding
	Notifications key.Binding
	Settings      key.Binding
	Location      key.Binding
	Tabs          key.Binding
	NewTab        key.Binding
	CloseTab      key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Help          key.Binding
	Quit          key.Binding
	ForceQuit     key.Binding

	// Menu keys
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:          key.NewBinding(key.WithKeys("left", "b", "alt+left"), key.WithHelp("←/b", "back")),
		Forward:       key.NewBinding(key.WithKeys("right", "f", "alt+right"), key.WithHelp("→/f", "forward")),
		BackMenu:      key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "back history")),
		ForwardMenu:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "forward history")),
		Home:          key.NewBinding(key.WithKeys("~"), key.WithHelp("~", "home")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notifications")),
		Settings:      key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		Location:      key.NewBinding(key.WithKeys("ctrl+l", ":"), key.WithHelp("ctrl+l", "location")),
		Tabs:          key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tabs")),
		NewTab:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new tab")),
		CloseTab:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close tab")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "close")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Location, k.Tabs, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.BackMenu, k.ForwardMenu},
		{k.Home, k.Search, k.Notifications, k.Settings, k.Location},
		{k.Tabs, k.NewTab, k.CloseTab, k.NextTab, k.PrevTab},
		{k.Help, k.Quit},
	}
}
