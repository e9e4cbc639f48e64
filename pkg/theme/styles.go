package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the shell renders with.
type Styles struct {
	TopBar       lipgloss.Style
	LocationIcon lipgloss.Style
	Location     lipgloss.Style
	Placeholder  lipgloss.Style

	ScreenTitle  lipgloss.Style
	Body         lipgloss.Style
	Dim          lipgloss.Style
	Link         lipgloss.Style
	LinkSelected lipgloss.Style

	BottomBar      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Menu         lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles derives the shell styles from t.
func NewStyles(t Theme) Styles {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	bar := lipgloss.NewStyle().Background(c(t.Bar)).Foreground(c(t.BarText))

	return Styles{
		TopBar:       bar,
		LocationIcon: bar.Foreground(c(t.Accent)).Bold(true),
		Location:     bar.Bold(true),
		Placeholder:  bar.Foreground(c(t.Dim)).Italic(true),

		ScreenTitle:  lipgloss.NewStyle().Foreground(c(t.Accent)).Bold(true),
		Body:         lipgloss.NewStyle().Foreground(c(t.Foreground)),
		Dim:          lipgloss.NewStyle().Foreground(c(t.Dim)),
		Link:         lipgloss.NewStyle().Foreground(c(t.Accent)).Underline(true),
		LinkSelected: lipgloss.NewStyle().Foreground(c(t.Background)).Background(c(t.Accent)),

		BottomBar:      bar,
		Button:         bar.Padding(0, 1),
		ButtonDisabled: bar.Padding(0, 1).Foreground(c(t.Dim)),

		TabActive:   lipgloss.NewStyle().Foreground(c(t.TabActive)).Bold(true),
		TabInactive: lipgloss.NewStyle().Foreground(c(t.TabInactive)),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.MenuBorder)).
			Padding(0, 1),
		MenuItem:     lipgloss.NewStyle().Foreground(c(t.Foreground)),
		MenuSelected: lipgloss.NewStyle().Foreground(c(t.MenuSelected)).Bold(true),

		StatusInfo:  bar.Foreground(c(t.StatusInfo)),
		StatusError: bar.Foreground(c(t.StatusError)).Bold(true),

		HelpKey:  lipgloss.NewStyle().Foreground(c(t.HelpKey)),
		HelpDesc: lipgloss.NewStyle().Foreground(c(t.HelpDesc)),
	}
}
