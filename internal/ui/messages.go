package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/studydeck/internal/reminder"
	"github.com/dori/studydeck/internal/ui/views"
)

// View represents the current active panel
type View int

const (
	ViewDashboard View = iota
	ViewResources
	ViewCalendar
	ViewFocus
	ViewVideos
	ViewProgress
	ViewCommunity
	ViewDaily
	ViewProfile
	ViewSettings
)

// Views lists every panel in navigation order
var Views = []View{
	ViewDashboard, ViewResources, ViewCalendar, ViewFocus, ViewVideos,
	ViewProgress, ViewCommunity, ViewDaily, ViewProfile, ViewSettings,
}

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewResources:
		return "Resources"
	case ViewCalendar:
		return "Calendar"
	case ViewFocus:
		return "Focus Zone"
	case ViewVideos:
		return "Study Videos"
	case ViewProgress:
		return "Progress"
	case ViewCommunity:
		return "Community"
	case ViewDaily:
		return "Daily"
	case ViewProfile:
		return "Profile"
	case ViewSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Key returns the number key that selects the view
func (v View) Key() string {
	if v == ViewSettings {
		return "0"
	}
	return fmt.Sprintf("%d", int(v)+1)
}

// ParseView maps a --view flag value to a view. Both the display name and
// its first word are accepted, case-insensitively.
func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Views {
		full := strings.ToLower(v.String())
		if name == full || name == strings.Fields(full)[0] {
			return v, nil
		}
	}
	return ViewDashboard, fmt.Errorf("unknown view %q", name)
}

// Messages for inter-component communication

// TickMsg is sent every second to drive the clock, timer and stopwatch
type TickMsg time.Time

// ReminderMsg is sent by the reminder scheduler from its own goroutine
type ReminderMsg struct {
	Kind reminder.Kind
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// notifyCmd runs a desktop notification off the update loop
func notifyCmd(send func() error) tea.Cmd {
	return func() tea.Msg {
		if err := send(); err != nil {
			return views.NotifyFailedMsg{Err: err}
		}
		return nil
	}
}
