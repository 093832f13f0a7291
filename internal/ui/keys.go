package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the global keybindings of the application. Panel keys are
// handled by each view.
type KeyMap struct {
	// Views
	DashboardView key.Binding
	ResourcesView key.Binding
	CalendarView  key.Binding
	FocusView     key.Binding
	VideosView    key.Binding
	ProgressView  key.Binding
	CommunityView key.Binding
	DailyView     key.Binding
	ProfileView   key.Binding
	SettingsView  key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Lock       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Views
		DashboardView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		ResourcesView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "resources"),
		),
		CalendarView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "calendar"),
		),
		FocusView: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "focus zone"),
		),
		VideosView: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "videos"),
		),
		ProgressView: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "progress"),
		),
		CommunityView: key.NewBinding(
			key.WithKeys("7"),
			key.WithHelp("7", "community"),
		),
		DailyView: key.NewBinding(
			key.WithKeys("8"),
			key.WithHelp("8", "daily"),
		),
		ProfileView: key.NewBinding(
			key.WithKeys("9"),
			key.WithHelp("9", "profile"),
		),
		SettingsView: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "settings"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Lock: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "lock"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// viewFor returns the view selected by a navigation key
func (k KeyMap) viewFor(msg tea.KeyMsg) (View, bool) {
	bindings := []key.Binding{
		k.DashboardView, k.ResourcesView, k.CalendarView, k.FocusView, k.VideosView,
		k.ProgressView, k.CommunityView, k.DailyView, k.ProfileView, k.SettingsView,
	}
	for i, b := range bindings {
		if key.Matches(msg, b) {
			return Views[i], true
		}
	}
	return ViewDashboard, false
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DashboardView, k.ResourcesView, k.CalendarView, k.FocusView, k.VideosView},
		{k.ProgressView, k.CommunityView, k.DailyView, k.ProfileView, k.SettingsView},
		{k.Help, k.ThemeCycle, k.Lock, k.Quit},
	}
}
