package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/focus"
	"github.com/dori/studydeck/internal/ui/theme"
)

// FocusTab selects the focus zone sub panel
type FocusTab int

const (
	FocusTabTimer FocusTab = iota
	FocusTabStopwatch
	FocusTabSessions
)

func (t FocusTab) String() string {
	switch t {
	case FocusTabStopwatch:
		return "Stopwatch"
	case FocusTabSessions:
		return "Sessions"
	default:
		return "Timer"
	}
}

// FocusView is the focus zone: countdown timer, stopwatch and session log.
// The timer itself lives in Deps and keeps ticking while other panels show.
type FocusView struct {
	deps   Deps
	width  int
	height int

	tab     FocusTab
	editing bool
	input   textinput.Model
}

// NewFocusView creates a new focus view
func NewFocusView(deps Deps) FocusView {
	ti := textinput.New()
	ti.Placeholder = "What are you studying?"
	ti.CharLimit = 64

	return FocusView{deps: deps, input: ti}
}

// Init initializes the focus view
func (v FocusView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v FocusView) SetSize(width, height int) FocusView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns true while the subject is being edited
func (v FocusView) IsInputMode() bool {
	return v.editing
}

// IsTimerRunning reports whether the countdown is active
func (v FocusView) IsTimerRunning() bool {
	return v.deps.Timer.Active()
}

// Tab returns the visible sub panel
func (v FocusView) Tab() FocusTab {
	return v.tab
}

// Update handles messages for the focus view
func (v FocusView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.editing {
		return v.handleSubjectInput(keyMsg)
	}

	switch keyMsg.String() {
	case "tab":
		v.tab = (v.tab + 1) % 3
		return v, nil
	case "shift+tab":
		v.tab = (v.tab + 2) % 3
		return v, nil
	case "m":
		return v, v.toggleSound()
	}

	switch v.tab {
	case FocusTabTimer:
		return v.handleTimerKeys(keyMsg)
	case FocusTabStopwatch:
		switch keyMsg.String() {
		case " ", "enter":
			v.deps.Stopwatch.Toggle()
		case "r":
			v.deps.Stopwatch.Reset()
		}
	}
	return v, nil
}

func (v FocusView) handleTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	timer := v.deps.Timer
	switch msg.String() {
	case " ", "enter":
		if timer.Active() {
			timer.Pause()
		} else {
			timer.Start()
		}
	case "r":
		timer.Reset()
	case "s":
		if timer.Active() {
			return v, nil
		}
		v.editing = true
		v.input.SetValue(timer.Subject())
		v.input.CursorEnd()
		v.input.Focus()
		return v, textinput.Blink
	case "+", "=":
		return v, durationCmd(timer.SetFocusMinutes(timer.FocusMinutes() + 5))
	case "-", "_":
		return v, durationCmd(timer.SetFocusMinutes(timer.FocusMinutes() - 5))
	case "]":
		return v, durationCmd(timer.SetBreakMinutes(timer.BreakMinutes() + 1))
	case "[":
		return v, durationCmd(timer.SetBreakMinutes(timer.BreakMinutes() - 1))
	}
	return v, nil
}

// durationCmd explains a rejected duration change
func durationCmd(err error) tea.Cmd {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, focus.ErrTimerActive):
		return func() tea.Msg { return StatusMsg{Message: "Pause the timer to change durations"} }
	default:
		return nil
	}
}

// subjectCmd explains a rejected subject change
func subjectCmd(err error) tea.Cmd {
	if errors.Is(err, focus.ErrTimerActive) {
		return func() tea.Msg { return StatusMsg{Message: "Pause the timer to change the subject"} }
	}
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

func (v FocusView) handleSubjectInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.editing = false
		v.input.Blur()
		if err := v.deps.Timer.SetSubject(strings.TrimSpace(v.input.Value())); err != nil {
			return v, subjectCmd(err)
		}
		return v, nil
	case "esc":
		v.editing = false
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// toggleSound flips the sound effects preference
func (v FocusView) toggleSound() tea.Cmd {
	if v.deps.App == nil {
		return nil
	}
	next := v.deps.App.Settings
	next.Preferences.SoundEffects = !next.Preferences.SoundEffects
	if err := v.deps.App.UpdateSettings(next); err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return func() tea.Msg { return SettingsChangedMsg{Settings: next} }
}

// View renders the focus zone
func (v FocusView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var tabs []string
	for _, tab := range []FocusTab{FocusTabTimer, FocusTabStopwatch, FocusTabSessions} {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(t.Subtle)
		if tab == v.tab {
			style = style.Foreground(t.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(tab.String()))
	}

	var body string
	switch v.tab {
	case FocusTabStopwatch:
		body = v.renderStopwatch()
	case FocusTabSessions:
		body = v.renderSessions()
	default:
		body = v.renderTimer()
	}

	sound := "off"
	if v.deps.Settings().Preferences.SoundEffects {
		sound = "on"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Focus Zone"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
		"",
		styles.Label.Render("sound: "+sound),
	)
}

func (v FocusView) renderTimer() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	timer := v.deps.Timer

	modeColor := t.FocusMode
	modeLabel := "FOCUS"
	if timer.Mode() == focus.ModeBreak {
		modeColor = t.BreakMode
		modeLabel = "BREAK"
	}

	state := "paused"
	if timer.Active() {
		state = "running"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(modeColor).Bold(true).Render(modeLabel))
	b.WriteString(styles.Label.Render("  " + state))
	b.WriteString("\n\n")

	clock := lipgloss.NewStyle().
		Foreground(modeColor).
		Bold(true).
		Padding(0, 3).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(modeColor).
		Render(timer.Display())
	b.WriteString(clock)
	b.WriteString("\n\n")

	bar := progress.New(
		progress.WithSolidFill(string(modeColor)),
		progress.WithWidth(40),
	)
	b.WriteString(bar.ViewAs(timer.Progress()))
	b.WriteString("\n\n")

	if v.editing {
		b.WriteString(styles.Label.Render("Subject: "))
		b.WriteString(styles.InputFocused.Render(v.input.View()))
	} else {
		subject := timer.Subject()
		if strings.TrimSpace(subject) == "" {
			subject = styles.Placeholder.Render("none, press s to set one")
		}
		b.WriteString(styles.Label.Render("Subject: ") + subject)
	}
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(fmt.Sprintf("Focus %d min (+/-)  •  Break %d min ([/])",
		timer.FocusMinutes(), timer.BreakMinutes())))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(fmt.Sprintf("Completed today: %d sessions, %d minutes",
		timer.CompletedCount(), timer.TotalStudyMinutes())))

	return b.String()
}

func (v FocusView) renderStopwatch() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	sw := v.deps.Stopwatch

	state := "paused"
	if sw.Active() {
		state = "running"
	}

	clock := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true).
		Padding(0, 3).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(t.Secondary).
		Render(sw.Display())

	return clock + "\n" + styles.Label.Render(state+" • space start/pause • r reset")
}

func (v FocusView) renderSessions() string {
	styles := theme.Current.Styles

	sessions := v.deps.Timer.Sessions()
	if len(sessions) == 0 {
		return styles.Label.Render("No completed sessions yet")
	}

	var b strings.Builder
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		end := ""
		if s.EndTime != nil {
			end = s.EndTime.Format("15:04")
		}
		b.WriteString(fmt.Sprintf("  %s  %-24s %3d min  %s–%s\n",
			checkbox(s.Completed), truncate(s.Subject, 24), s.Duration,
			s.StartTime.Format("15:04"), end))
	}
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(fmt.Sprintf("Total: %d sessions, %d minutes",
		v.deps.Timer.CompletedCount(), v.deps.Timer.TotalStudyMinutes())))
	return b.String()
}
