package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		Default(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// Default returns the dark neutral theme with a sky blue accent.
func Default() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#1083fe",

		Bar:     "#2a2a2a",
		BarText: "#d4d4d4",

		TabActive:   "#1083fe",
		TabInactive: "#6b6b6b",

		MenuBorder:   "#3e3e3e",
		MenuSelected: "#1083fe",

		StatusInfo:  "#4ec970",
		StatusError: "#e06c75",

		HelpKey:  "#1083fe",
		HelpDesc: "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Bar:     "#3c3836",
		BarText: "#ebdbb2",

		TabActive:   "#fe8019",
		TabInactive: "#928374",

		MenuBorder:   "#504945",
		MenuSelected: "#fabd2f",

		StatusInfo:  "#b8bb26",
		StatusError: "#fb4934",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// thNordTheme returns the arctic Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Bar:     "#3b4252",
		BarText: "#e5e9f0",

		TabActive:   "#88c0d0",
		TabInactive: "#4c566a",

		MenuBorder:   "#434c5e",
		MenuSelected: "#81a1c1",

		StatusInfo:  "#a3be8c",
		StatusError: "#bf616a",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// thCatppuccinTheme returns the Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",
		Dim:        "#6c7086",
		Accent:     "#cba6f7",

		Bar:     "#181825",
		BarText: "#cdd6f4",

		TabActive:   "#cba6f7",
		TabInactive: "#6c7086",

		MenuBorder:   "#313244",
		MenuSelected: "#f5c2e7",

		StatusInfo:  "#a6e3a1",
		StatusError: "#f38ba8",

		HelpKey:  "#cba6f7",
		HelpDesc: "#6c7086",
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Bar:     "#44475a",
		BarText: "#f8f8f2",

		TabActive:   "#bd93f9",
		TabInactive: "#6272a4",

		MenuBorder:   "#44475a",
		MenuSelected: "#ff79c6",

		StatusInfo:  "#50fa7b",
		StatusError: "#ff5555",

		HelpKey:  "#bd93f9",
		HelpDesc: "#6272a4",
	}
}

// thTokyoNightTheme returns the Tokyo Night theme.
func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: "#1a1b26",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Bar:     "#16161e",
		BarText: "#a9b1d6",

		TabActive:   "#7aa2f7",
		TabInactive: "#565f89",

		MenuBorder:   "#292e42",
		MenuSelected: "#bb9af7",

		StatusInfo:  "#9ece6a",
		StatusError: "#f7768e",

		HelpKey:  "#7aa2f7",
		HelpDesc: "#565f89",
	}
}
