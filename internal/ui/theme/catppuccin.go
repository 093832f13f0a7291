package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
var Catppuccin = Theme{
	Name: "catppuccin",

	Background: lipgloss.Color("#1E1E2E"),
	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"),
	Highlight:  lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475A"),

	Primary:   lipgloss.Color("#89B4FA"), // Blue
	Secondary: lipgloss.Color("#CBA6F7"), // Mauve
	Info:      lipgloss.Color("#74C7EC"), // Sapphire

	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#F9E2AF"),
	Error:   lipgloss.Color("#F38BA8"),

	PriorityLow:    lipgloss.Color("#A6E3A1"),
	PriorityMedium: lipgloss.Color("#FAB387"), // Peach
	PriorityHigh:   lipgloss.Color("#F38BA8"),

	FocusMode: lipgloss.Color("#F5C2E7"), // Pink
	BreakMode: lipgloss.Color("#94E2D5"), // Teal
	Favorite:  lipgloss.Color("#F9E2AF"),
}
