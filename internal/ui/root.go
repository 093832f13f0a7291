package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/app"
	"github.com/dori/studydeck/internal/focus"
	"github.com/dori/studydeck/internal/media"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/reminder"
	"github.com/dori/studydeck/internal/settings"
	"github.com/dori/studydeck/internal/ui/theme"
	"github.com/dori/studydeck/internal/ui/views"
)

const sidebarWidth = 26

// sessionMilestones award an achievement when the completed focus session
// count reaches them
var sessionMilestones = map[int]string{
	1:   "First Focus Session",
	10:  "Ten Focus Sessions",
	50:  "Fifty Focus Sessions",
	100: "Hundred Focus Sessions",
}

// RootModel is the main application model that owns the gate, every panel
// and the one-second clock
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int
	now    func() time.Time

	deps   views.Deps
	locked bool
	gate   views.GateView

	currentView   View
	dashboardView views.DashboardView
	resourcesView views.ResourcesView
	calendarView  views.CalendarView
	focusView     views.FocusView
	videosView    views.VideosView
	progressView  views.ProgressView
	communityView views.CommunityView
	dailyView     views.DailyView
	profileView   views.ProfileView
	settingsView  views.SettingsView
	helpVisible   bool

	// Set while the countdown runs a long break
	longBreak bool

	// Status message
	statusMsg string
	errorMsg  string
}

// Option configures the root model
type Option func(*RootModel)

// WithClock replaces time.Now for the panels and the timer
func WithClock(now func() time.Time) Option {
	return func(m *RootModel) { m.now = now }
}

// WithStartView selects the panel shown after unlocking
func WithStartView(v View) Option {
	return func(m *RootModel) { m.currentView = v }
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, opts ...Option) RootModel {
	h := help.New()
	h.ShowAll = true

	m := RootModel{
		app:         application,
		keys:        DefaultKeyMap(),
		help:        h,
		now:         time.Now,
		currentView: ViewDashboard,
	}
	for _, opt := range opts {
		opt(&m)
	}

	theme.Apply(application.Settings.Preferences.Theme)
	m.buildPanels()
	return m
}

// buildPanels creates fresh panel state from the app's settings
func (m *RootModel) buildPanels() {
	m.deps = views.NewDeps(m.app, m.app.Settings, m.now)
	m.locked = !m.app.Gate.Unlocked()
	m.gate = views.NewGateView(m.app.Gate)
	m.longBreak = false

	m.dashboardView = views.NewDashboardView(m.deps)
	m.resourcesView = views.NewResourcesView(m.deps)
	m.calendarView = views.NewCalendarView(m.deps)
	m.focusView = views.NewFocusView(m.deps)
	m.videosView = views.NewVideosView(m.deps)
	m.progressView = views.NewProgressView(m.deps)
	m.communityView = views.NewCommunityView(m.deps)
	m.dailyView = views.NewDailyView(m.deps)
	m.profileView = views.NewProfileView(m.deps)
	m.settingsView = views.NewSettingsView(m.deps)
	m.resize()
}

// Locked reports whether the PIN gate is showing
func (m RootModel) Locked() bool {
	return m.locked
}

// CurrentView returns the active panel
func (m RootModel) CurrentView() View {
	return m.currentView
}

// Deps exposes the shared panel state
func (m RootModel) Deps() views.Deps {
	return m.deps
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.locked {
		cmds = append(cmds, m.gate.Init())
	}
	return tea.Batch(cmds...)
}

// resize pushes the window size down to every panel
func (m *RootModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// Reserve space for header (1 line) and footer (3 lines)
	contentWidth := m.width - sidebarWidth - 2
	contentHeight := m.height - 4

	m.gate = m.gate.SetSize(m.width, m.height)
	m.dashboardView = m.dashboardView.SetSize(contentWidth, contentHeight)
	m.resourcesView = m.resourcesView.SetSize(contentWidth, contentHeight)
	m.calendarView = m.calendarView.SetSize(contentWidth, contentHeight)
	m.focusView = m.focusView.SetSize(contentWidth, contentHeight)
	m.videosView = m.videosView.SetSize(contentWidth, contentHeight)
	m.progressView = m.progressView.SetSize(contentWidth, contentHeight)
	m.communityView = m.communityView.SetSize(contentWidth, contentHeight)
	m.dailyView = m.dailyView.SetSize(contentWidth, contentHeight)
	m.profileView = m.profileView.SetSize(contentWidth, contentHeight)
	m.settingsView = m.settingsView.SetSize(contentWidth, contentHeight)
}

// isInputMode reports whether the current panel is capturing text
func (m RootModel) isInputMode() bool {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.IsInputMode()
	case ViewResources:
		return m.resourcesView.IsInputMode()
	case ViewCalendar:
		return m.calendarView.IsInputMode()
	case ViewFocus:
		return m.focusView.IsInputMode()
	case ViewVideos:
		return m.videosView.IsInputMode()
	case ViewProgress:
		return m.progressView.IsInputMode()
	case ViewCommunity:
		return m.communityView.IsInputMode()
	case ViewDaily:
		return m.dailyView.IsInputMode()
	case ViewProfile:
		return m.profileView.IsInputMode()
	case ViewSettings:
		return m.settingsView.IsInputMode()
	}
	return false
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		// The timer keeps counting while the gate or another panel is shown
		cmds := m.tick()
		cmds = append(cmds, tickCmd())
		return m, tea.Batch(cmds...)

	case ReminderMsg:
		return m, m.remind(msg.Kind)

	case views.UnlockedMsg:
		m.locked = false
		m.statusMsg = "Welcome back!"
		m.app.Log.Info().Msg("gate unlocked")
		return m, nil

	case views.LockedMsg:
		m.locked = true
		m.gate = views.NewGateView(m.app.Gate).SetSize(m.width, m.height)
		m.app.Log.Info().Msg("gate locked")
		return m, m.gate.Init()

	case views.ResetMsg:
		theme.Apply(m.app.Settings.Preferences.Theme)
		m.buildPanels()
		m.currentView = ViewDashboard
		m.statusMsg = "All data reset"
		return m, m.gate.Init()

	case views.SettingsChangedMsg:
		m.applySettings(msg.Settings)
		return m, nil

	case views.ErrorMsg:
		m.statusMsg = ""
		m.errorMsg = errorText(msg.Err)
		m.app.Log.Error().Err(msg.Err).Str("view", m.currentView.String()).Msg("panel error")
		return m, nil

	case views.StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case views.DailyImageMsg:
		// Image loads finish after the user may have left the panel
		next, cmd := m.dailyView.Update(msg)
		m.dailyView = next.(views.DailyView)
		return m, cmd

	case views.PostImageMsg:
		next, cmd := m.communityView.Update(msg)
		m.communityView = next.(views.CommunityView)
		return m, cmd

	case views.NotifyFailedMsg:
		m.app.Log.Warn().Err(msg.Err).Msg("notification failed")
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		if m.locked {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			newGate, cmd := m.gate.Update(msg)
			m.gate = newGate.(views.GateView)
			return m, cmd
		}

		isInputMode := m.isInputMode()

		// Global keybindings
		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}
			// Otherwise, let the view handle 'q' as a character

		case key.Matches(msg, m.keys.ThemeCycle):
			// ctrl+t always works (unlikely to type)
			return m, m.cycleTheme()
		}

		// Skip other global keys when in input mode
		if isInputMode {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			return m, nil

		case key.Matches(msg, m.keys.Lock):
			if err := m.app.Gate.Lock(); err != nil {
				m.errorMsg = errorText(err)
				return m, nil
			}
			return m.Update(views.LockedMsg{})

		case m.helpVisible && msg.String() == "esc":
			m.helpVisible = false
			return m, nil
		}

		if v, ok := m.keys.viewFor(msg); ok {
			m.currentView = v
			m.helpVisible = false
			return m, nil
		}
	}

	if m.locked {
		newGate, cmd := m.gate.Update(msg)
		m.gate = newGate.(views.GateView)
		return m, cmd
	}
	return m.updateCurrent(msg)
}

// updateCurrent delegates a message to the current panel
func (m RootModel) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model
	switch m.currentView {
	case ViewDashboard:
		next, cmd = m.dashboardView.Update(msg)
		m.dashboardView = next.(views.DashboardView)
	case ViewResources:
		next, cmd = m.resourcesView.Update(msg)
		m.resourcesView = next.(views.ResourcesView)
	case ViewCalendar:
		next, cmd = m.calendarView.Update(msg)
		m.calendarView = next.(views.CalendarView)
	case ViewFocus:
		next, cmd = m.focusView.Update(msg)
		m.focusView = next.(views.FocusView)
	case ViewVideos:
		next, cmd = m.videosView.Update(msg)
		m.videosView = next.(views.VideosView)
	case ViewProgress:
		next, cmd = m.progressView.Update(msg)
		m.progressView = next.(views.ProgressView)
	case ViewCommunity:
		next, cmd = m.communityView.Update(msg)
		m.communityView = next.(views.CommunityView)
	case ViewDaily:
		next, cmd = m.dailyView.Update(msg)
		m.dailyView = next.(views.DailyView)
	case ViewProfile:
		next, cmd = m.profileView.Update(msg)
		m.profileView = next.(views.ProfileView)
	case ViewSettings:
		next, cmd = m.settingsView.Update(msg)
		m.settingsView = next.(views.SettingsView)
	}
	return m, cmd
}

// errorText renders an error for the status line
func errorText(err error) string {
	if errors.Is(err, settings.ErrInvalidFormat) {
		return "Invalid file format!"
	}
	return err.Error()
}

// tick advances the stopwatch and the countdown by one second and reacts
// to an expired countdown
func (m *RootModel) tick() []tea.Cmd {
	m.deps.Stopwatch.Tick()
	ex, expired := m.deps.Timer.Tick()
	if !expired {
		return nil
	}

	s := m.app.Settings
	study := s.StudySettings
	var cmds []tea.Cmd
	if s.Preferences.SoundEffects {
		cmds = append(cmds, bellCmd())
	}

	switch ex.From {
	case focus.ModeFocus:
		completed := m.deps.Timer.CompletedCount()
		if ex.Session != nil {
			m.app.Log.Info().
				Str("subject", ex.Session.Subject).
				Int("minutes", ex.Session.Duration).
				Msg("focus session completed")
			if s.Notifications.BreakReminders {
				session := *ex.Session
				notifier := m.app.Notifier
				cmds = append(cmds, notifyCmd(func() error {
					return notifier.SendFocusComplete(session.Subject, session.Duration)
				}))
			}
			cmds = append(cmds, m.award(completed)...)
		}
		if study.SessionsBeforeLongBreak > 0 && completed > 0 && completed%study.SessionsBeforeLongBreak == 0 {
			if err := m.deps.Timer.SetBreakMinutes(study.LongBreakTime); err == nil {
				m.longBreak = true
			}
		}
		m.statusMsg = "Focus session complete! Time for a break."
		if study.AutoStartBreaks {
			m.deps.Timer.Start()
		}

	case focus.ModeBreak:
		if m.longBreak {
			m.longBreak = false
			if err := m.deps.Timer.SetBreakMinutes(study.DefaultBreakTime); err != nil {
				m.app.Log.Warn().Err(err).Msg("failed to restore break duration")
			}
		}
		if s.Notifications.BreakReminders {
			notifier := m.app.Notifier
			cmds = append(cmds, notifyCmd(notifier.SendBreakComplete))
		}
		m.statusMsg = "Break over! Ready for the next session."
		if study.AutoStartSessions {
			m.deps.Timer.Start()
		}
	}
	return cmds
}

// award grants the milestone achievement for the completed session count
func (m *RootModel) award(completed int) []tea.Cmd {
	title, ok := sessionMilestones[completed]
	if !ok {
		return nil
	}
	a := model.Achievement{
		ID:          model.NewID(),
		Title:       title,
		Description: fmt.Sprintf("Completed %d focus sessions", completed),
		Date:        m.now().Format(model.DateLayout),
		Type:        model.AchievementStudy,
	}
	m.deps.Profile.Award(a)
	if !m.app.Settings.Notifications.AchievementAlerts {
		return nil
	}
	notifier := m.app.Notifier
	return []tea.Cmd{notifyCmd(func() error {
		return notifier.SendAchievement(a.Title, a.Description)
	})}
}

// remind answers a scheduled reminder with a notification built from the
// current panel state
func (m RootModel) remind(kind reminder.Kind) tea.Cmd {
	n := m.app.Settings.Notifications
	notifier := m.app.Notifier
	m.app.Log.Debug().Str("kind", string(kind)).Msg("reminder fired")

	switch kind {
	case reminder.KindStudy:
		if !n.StudyReminders {
			return nil
		}
		today := m.sessionsToday()
		return notifyCmd(func() error { return notifier.SendStudyReminder(today) })
	case reminder.KindGoals:
		if !n.DailyGoals {
			return nil
		}
		done, total := m.deps.Daily.Completed()
		return notifyCmd(func() error { return notifier.SendDailyGoals(done, total) })
	}
	return nil
}

// sessionsToday counts focus sessions completed since midnight
func (m RootModel) sessionsToday() int {
	now := m.now()
	y, mo, d := now.Date()
	count := 0
	for _, s := range m.deps.Timer.Sessions() {
		sy, smo, sd := s.StartTime.Date()
		if sy == y && smo == mo && sd == d {
			count++
		}
	}
	return count
}

// applySettings re-reads saved settings: the palette and, while the
// countdown is stopped, the focus and break durations
func (m *RootModel) applySettings(s settings.Settings) {
	theme.Apply(s.Preferences.Theme)

	timer := m.deps.Timer
	if timer.Active() {
		return
	}
	if err := timer.SetFocusMinutes(s.StudySettings.DefaultFocusTime); err != nil {
		m.app.Log.Warn().Err(err).Msg("focus duration not applied")
	}
	breakMinutes := s.StudySettings.DefaultBreakTime
	if m.longBreak {
		breakMinutes = s.StudySettings.LongBreakTime
	}
	if err := timer.SetBreakMinutes(breakMinutes); err != nil {
		m.app.Log.Warn().Err(err).Msg("break duration not applied")
	}
}

// cycleTheme moves to the next palette and saves it as the theme preference
func (m *RootModel) cycleTheme() tea.Cmd {
	next := theme.Next(theme.Current.Theme.Name)
	theme.SetTheme(next)

	s := m.app.Settings
	s.Preferences.Theme = next.Name
	if err := m.app.UpdateSettings(s); err != nil {
		m.app.Log.Warn().Err(err).Msg("theme not saved")
	}
	return func() tea.Msg { return ThemeChangedMsg{ThemeName: next.Name} }
}

// bellCmd rings the terminal bell
func bellCmd() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.locked {
		return m.gate.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	// Reserve: 1 line for header + 3 lines for footer (status + 2 hint lines)
	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.currentContent()
	}
	content = lipgloss.NewStyle().
		Width(m.width - sidebarWidth - 2).
		MaxHeight(contentHeight).
		PaddingLeft(1).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(contentHeight), content)

	// Ensure content fills available space
	bodyLines := strings.Count(body, "\n") + 1
	if bodyLines < contentHeight {
		body += strings.Repeat("\n", contentHeight-bodyLines)
	}
	sections = append(sections, body, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m RootModel) currentContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewResources:
		return m.resourcesView.View()
	case ViewCalendar:
		return m.calendarView.View()
	case ViewFocus:
		return m.focusView.View()
	case ViewVideos:
		return m.videosView.View()
	case ViewProgress:
		return m.progressView.View()
	case ViewCommunity:
		return m.communityView.View()
	case ViewDaily:
		return m.dailyView.View()
	case ViewProfile:
		return m.profileView.View()
	case ViewSettings:
		return m.settingsView.View()
	}
	return theme.Current.Styles.Panel.Render("View not implemented")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("studydeck")

	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	viewIndicator := viewStyle.Render(fmt.Sprintf("[%s]", m.currentView.String()))
	themeIndicator := viewStyle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, viewIndicator)
	rightSide := themeIndicator

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}
	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderSidebar renders the panel navigation and the daily preview
func (m RootModel) renderSidebar(height int) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	for _, v := range Views {
		line := fmt.Sprintf("%s %s", v.Key(), v.String())
		if v == m.currentView {
			b.WriteString(styles.SidebarActive.Render("▸ " + line))
		} else {
			b.WriteString(styles.SidebarItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	timer := m.deps.Timer
	if timer.Active() {
		icon := lipgloss.NewStyle().Foreground(t.FocusMode).Render("● focus")
		if timer.Mode() == focus.ModeBreak {
			icon = lipgloss.NewStyle().Foreground(t.BreakMode).Render("● break")
		}
		b.WriteString("\n" + icon + " " + timer.Display() + "\n")
	}

	// Daily preview
	b.WriteString("\n")
	b.WriteString(styles.PanelTitle.Render("Today"))
	b.WriteString("\n")
	if quote := m.deps.Daily.QuotePreview(); quote != "" {
		b.WriteString(styles.Label.Render("“" + quote + "”"))
		b.WriteString("\n")
	}
	done, total := m.deps.Daily.Completed()
	b.WriteString(fmt.Sprintf("%d/%d tasks done\n", done, total))
	if img := m.deps.Daily.Image(); img != "" {
		b.WriteString(styles.Label.Render("🖼 " + media.Describe(img)))
		b.WriteString("\n")
	}

	return styles.Sidebar.
		Width(sidebarWidth).
		Height(height).
		Render(strings.TrimRight(b.String(), "\n"))
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	// Helper to format key hints
	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1 string
	line2 := key("0-9", "panels") + sep +
		key("ctrl+t", "theme") + sep +
		key("ctrl+l", "lock") + sep +
		key("?", "help") + sep +
		key("q", "quit")

	switch {
	case m.helpVisible:
		line1 = key("?/esc", "close help")

	case m.isInputMode():
		line1 = key("enter", "confirm") + sep +
			key("tab", "next field") + sep +
			key("esc", "cancel")
		line2 = ""

	case m.currentView == ViewDashboard:
		line1 = key("j/k", "navigate") + sep +
			key("space", "toggle") + sep +
			key("a", "add task") + sep +
			key("d", "delete")

	case m.currentView == ViewResources:
		line1 = key("/", "search") + sep +
			key("s/t/e", "subject/type/exam") + sep +
			key("f", "favorites") + sep +
			key("c", "clear") + sep +
			key("space", "favorite") + sep +
			key("a", "add") + sep +
			key("d", "delete")

	case m.currentView == ViewCalendar:
		line1 = key("h/j/k/l", "days") + sep +
			key("H/L", "months") + sep +
			key("t", "today") + sep +
			key("tab", "events") + sep +
			key("a", "add event")

	case m.currentView == ViewFocus:
		switch {
		case m.focusView.Tab() == views.FocusTabStopwatch:
			line1 = key("space", "start/pause") + sep + key("r", "reset")
		case m.focusView.Tab() == views.FocusTabSessions:
			line1 = key("tab", "switch tab")
		case m.focusView.IsTimerRunning():
			line1 = key("space", "pause") + sep + key("r", "reset")
		default:
			line1 = key("space", "start") + sep +
				key("s", "subject") + sep +
				key("+/-", "focus") + sep +
				key("[/]", "break") + sep +
				key("m", "sound") + sep +
				key("r", "reset")
		}
		line1 += sep + key("tab", "timer/stopwatch/sessions")

	case m.currentView == ViewVideos:
		line1 = key("/", "search") + sep +
			key("enter", "open") + sep +
			key("a", "add") + sep +
			key("d", "delete")

	case m.currentView == ViewCommunity:
		line1 = key("tab", "filter") + sep +
			key("n", "new post") + sep +
			key("l", "like") + sep +
			key("enter", "comments") + sep +
			key("c", "comment") + sep +
			key("d", "delete")

	case m.currentView == ViewDaily:
		line1 = key("tab", "section") + sep +
			key("a", "add") + sep +
			key("space", "toggle") + sep +
			key("d", "delete") + sep +
			key("e", "quote") + sep +
			key("i/X", "image")
		if m.dailyView.Section() == views.DailySectionTargets {
			line1 += sep + key("+/-", "progress")
		}

	case m.currentView == ViewProfile:
		line1 = key("e", "edit profile")

	case m.currentView == ViewSettings:
		line1 = key("j/k", "navigate") + sep +
			key("h/l", "change") + sep +
			key("enter", "select")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	var b strings.Builder
	b.WriteString(titleStyle.Render("studydeck Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  [][]string
	}{
		{"Lists", [][]string{
			{"↑/k ↓/j", "Navigate up/down"},
			{"a", "Add an item"},
			{"space", "Toggle done or favorite"},
			{"d", "Delete the selected item"},
			{"/", "Search (resources, videos)"},
		}},
		{"Focus Zone", [][]string{
			{"s", "Set the study subject"},
			{"space", "Start or pause the timer"},
			{"r", "Reset the countdown"},
			{"+/-  [/]", "Adjust focus and break minutes"},
		}},
		{"Forms", [][]string{
			{"tab", "Next field"},
			{"←/→", "Cycle a choice"},
			{"enter", "Save"},
			{"esc", "Cancel"},
		}},
	}
	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, kv := range section.keys {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Press ? or esc to close"))
	return b.String()
}
