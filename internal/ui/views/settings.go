package views

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/gate"
	"github.com/dori/studydeck/internal/settings"
	"github.com/dori/studydeck/internal/ui/theme"
)

// SettingsMode represents the current mode of the settings view
type SettingsMode int

const (
	SettingsModeNormal SettingsMode = iota
	SettingsModePIN
	SettingsModeExport
	SettingsModeImport
	SettingsModeConfirmReset
)

// settingAction is what enter does on a row without a value
type settingAction int

const (
	actionNone settingAction = iota
	actionChangePIN
	actionLock
	actionExport
	actionImport
	actionReset
)

// settingRow is one line of the settings list. Rows with change set are
// adjusted with left/right (or toggled with space); rows with an action run
// it on enter.
type settingRow struct {
	section string
	label   string
	value   func(s settings.Settings) string
	change  func(s *settings.Settings, dir int)
	action  settingAction
}

// exportedMsg reports the outcome of writing a backup file
type exportedMsg struct {
	path string
	err  error
}

// importedMsg carries settings parsed from a backup file
type importedMsg struct {
	settings settings.Settings
	err      error
}

// SettingsView edits security, preferences, study defaults and
// notification toggles, and exports, imports or resets local data
type SettingsView struct {
	deps   Deps
	width  int
	height int

	rows   []settingRow
	cursor int
	mode   SettingsMode
	form   Form
	pinErr string
}

// NewSettingsView creates a new settings view
func NewSettingsView(deps Deps) SettingsView {
	return SettingsView{deps: deps, rows: settingRows()}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// step moves n by dir*by inside [lo, hi]
func step(n, dir, by, lo, hi int) int {
	n += dir * by
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}

func cycleDir(values []string, current string, dir int) string {
	if dir >= 0 {
		return cycle(values, current)
	}
	for i, v := range values {
		if v == current {
			return values[(i-1+len(values))%len(values)]
		}
	}
	return values[0]
}

func settingRows() []settingRow {
	toggle := func(label, section string, field func(s *settings.Settings) *bool) settingRow {
		return settingRow{
			section: section,
			label:   label,
			value:   func(s settings.Settings) string { return onOff(*field(&s)) },
			change:  func(s *settings.Settings, _ int) { f := field(s); *f = !*f },
		}
	}
	choice := func(label, section string, values func() []string, field func(s *settings.Settings) *string) settingRow {
		return settingRow{
			section: section,
			label:   label,
			value:   func(s settings.Settings) string { return *field(&s) },
			change: func(s *settings.Settings, dir int) {
				f := field(s)
				*f = cycleDir(values(), *f, dir)
			},
		}
	}
	number := func(label, section, unit string, by, lo, hi int, field func(s *settings.Settings) *int) settingRow {
		return settingRow{
			section: section,
			label:   label,
			value:   func(s settings.Settings) string { return fmt.Sprintf("%d %s", *field(&s), unit) },
			change: func(s *settings.Settings, dir int) {
				f := field(s)
				*f = step(*f, dir, by, lo, hi)
			},
		}
	}
	fixed := func(values []string) func() []string { return func() []string { return values } }

	return []settingRow{
		{section: "Security", label: "Change PIN", action: actionChangePIN},
		{section: "Security", label: "Lock dashboard", action: actionLock},

		choice("Theme", "Preferences", theme.Names, func(s *settings.Settings) *string { return &s.Preferences.Theme }),
		choice("Language", "Preferences", fixed(settings.Languages), func(s *settings.Settings) *string { return &s.Preferences.Language }),
		choice("Time format", "Preferences", fixed(settings.TimeFormats), func(s *settings.Settings) *string { return &s.Preferences.TimeFormat }),
		choice("Start of week", "Preferences", fixed(settings.StartOfWeeks), func(s *settings.Settings) *string { return &s.Preferences.StartOfWeek }),
		toggle("Auto save", "Preferences", func(s *settings.Settings) *bool { return &s.Preferences.AutoSave }),
		toggle("Sound effects", "Preferences", func(s *settings.Settings) *bool { return &s.Preferences.SoundEffects }),

		number("Focus time", "Study", "min", 5, 5, settings.MaxFocusTime, func(s *settings.Settings) *int { return &s.StudySettings.DefaultFocusTime }),
		number("Break time", "Study", "min", 1, 1, settings.MaxBreakTime, func(s *settings.Settings) *int { return &s.StudySettings.DefaultBreakTime }),
		number("Long break", "Study", "min", 5, 5, settings.MaxBreakTime, func(s *settings.Settings) *int { return &s.StudySettings.LongBreakTime }),
		number("Long break every", "Study", "sessions", 1, 1, settings.MaxSessions, func(s *settings.Settings) *int { return &s.StudySettings.SessionsBeforeLongBreak }),
		toggle("Auto start breaks", "Study", func(s *settings.Settings) *bool { return &s.StudySettings.AutoStartBreaks }),
		toggle("Auto start sessions", "Study", func(s *settings.Settings) *bool { return &s.StudySettings.AutoStartSessions }),

		toggle("Study reminders", "Notifications", func(s *settings.Settings) *bool { return &s.Notifications.StudyReminders }),
		toggle("Break reminders", "Notifications", func(s *settings.Settings) *bool { return &s.Notifications.BreakReminders }),
		toggle("Achievement alerts", "Notifications", func(s *settings.Settings) *bool { return &s.Notifications.AchievementAlerts }),
		toggle("Daily goals", "Notifications", func(s *settings.Settings) *bool { return &s.Notifications.DailyGoals }),

		{section: "Data", label: "Export settings", action: actionExport},
		{section: "Data", label: "Import settings", action: actionImport},
		{section: "Data", label: "Reset all data", action: actionReset},
	}
}

// Init initializes the settings view
func (v SettingsView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v SettingsView) SetSize(width, height int) SettingsView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns true while a form or confirmation is open
func (v SettingsView) IsInputMode() bool {
	return v.mode != SettingsModeNormal
}

// Update handles messages for the settings view
func (v SettingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: msg.err} }
		}
		return v, func() tea.Msg { return StatusMsg{Message: "Settings exported to " + msg.path} }

	case importedMsg:
		if msg.err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: msg.err} }
		}
		return v, v.apply(msg.settings, "Settings imported")

	case tea.KeyMsg:
		switch v.mode {
		case SettingsModePIN:
			return v.handlePINForm(msg)
		case SettingsModeExport, SettingsModeImport:
			return v.handlePathForm(msg)
		case SettingsModeConfirmReset:
			return v.handleResetConfirm(msg)
		}
		return v.handleNormalMode(msg)
	}
	return v, nil
}

func (v SettingsView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(v.rows))
		return v, nil
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(v.rows))
		return v, nil
	}

	row := v.rows[v.cursor]
	if row.change != nil {
		dir := 0
		switch msg.String() {
		case "l", "right", " ", "enter":
			dir = 1
		case "h", "left":
			dir = -1
		}
		if dir == 0 {
			return v, nil
		}
		next := v.deps.App.Settings
		row.change(&next, dir)
		return v, v.apply(next, "")
	}

	if msg.String() != "enter" {
		return v, nil
	}
	switch row.action {
	case actionChangePIN:
		v.mode = SettingsModePIN
		v.pinErr = ""
		v.form = NewForm("Change PIN",
			TextField("current", "Current PIN", ""),
			TextField("next", "New PIN", ""),
			TextField("confirm", "Confirm PIN", ""),
		)
		for _, key := range []string{"current", "next", "confirm"} {
			v.form.SetEcho(key, textinput.EchoPassword)
		}
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	case actionLock:
		if err := v.deps.App.Gate.Lock(); err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: err} }
		}
		return v, func() tea.Msg { return LockedMsg{} }
	case actionExport:
		v.mode = SettingsModeExport
		v.form = NewForm("Export settings", TextField("path", "File", settings.BackupFileName))
		v.form.SetValue("path", settings.BackupFileName)
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	case actionImport:
		v.mode = SettingsModeImport
		v.form = NewForm("Import settings", TextField("path", "File", settings.BackupFileName))
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	case actionReset:
		v.mode = SettingsModeConfirmReset
	}
	return v, nil
}

// apply validates and saves next, then tells the root to re-read it
func (v SettingsView) apply(next settings.Settings, status string) tea.Cmd {
	if err := v.deps.App.UpdateSettings(next); err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	cmds := []tea.Cmd{func() tea.Msg { return SettingsChangedMsg{Settings: next} }}
	if status != "" {
		cmds = append(cmds, func() tea.Msg { return StatusMsg{Message: status} })
	}
	return tea.Batch(cmds...)
}

func (v SettingsView) handlePINForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		err := v.deps.App.Gate.ChangePIN(v.form.Value("current"), v.form.Value("next"), v.form.Value("confirm"))
		switch {
		case err == nil:
			v.mode = SettingsModeNormal
			v.pinErr = ""
			return v, func() tea.Msg { return StatusMsg{Message: "PIN updated"} }
		case errors.Is(err, gate.ErrInvalidPIN):
			v.pinErr = "Current PIN is incorrect"
		case errors.Is(err, gate.ErrPINMismatch):
			v.pinErr = "New PINs don't match"
		case errors.Is(err, gate.ErrPINLength):
			v.pinErr = fmt.Sprintf("PIN must be %d digits", gate.PINLength)
		default:
			v.mode = SettingsModeNormal
			return v, func() tea.Msg { return ErrorMsg{Err: err} }
		}
		var open tea.Cmd
		v.form, open = v.form.Open()
		return v, open
	case FormCancelled:
		v.mode = SettingsModeNormal
		v.pinErr = ""
	}
	return v, cmd
}

func (v SettingsView) handlePathForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		mode := v.mode
		v.mode = SettingsModeNormal
		path := v.form.Value("path")
		if path == "" {
			return v, nil
		}
		if mode == SettingsModeExport {
			return v, exportSettings(path, v.deps.App.Settings, v.deps)
		}
		return v, importSettings(path)
	case FormCancelled:
		v.mode = SettingsModeNormal
	}
	return v, cmd
}

// exportSettings writes a snapshot of s off the update loop
func exportSettings(path string, s settings.Settings, deps Deps) tea.Cmd {
	now := deps.Now()
	return func() tea.Msg {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return exportedMsg{path: path, err: settings.ExportFile(path, s, now)}
	}
}

// importSettings parses a backup file off the update loop
func importSettings(path string) tea.Cmd {
	return func() tea.Msg {
		s, err := settings.ImportFile(path)
		return importedMsg{settings: s, err: err}
	}
}

func (v SettingsView) handleResetConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = SettingsModeNormal
		if err := v.deps.App.Reset(); err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: err} }
		}
		return v, func() tea.Msg { return ResetMsg{} }
	case "n", "N", "esc":
		v.mode = SettingsModeNormal
	}
	return v, nil
}

// View renders the settings view
func (v SettingsView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	if v.mode == SettingsModePIN || v.mode == SettingsModeExport || v.mode == SettingsModeImport {
		view := v.form.View()
		if v.pinErr != "" {
			view += "\n" + styles.Error.Render(v.pinErr)
		}
		return view
	}

	current := v.deps.App.Settings
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).MarginTop(1)
	labelStyle := lipgloss.NewStyle().Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(t.Info)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Settings"))
	section := ""
	for i, row := range v.rows {
		if row.section != section {
			section = row.section
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(section))
			b.WriteString("\n")
		}
		line := labelStyle.Render(row.label)
		if row.value != nil {
			line += valueStyle.Render("‹ " + row.value(current) + " ›")
		} else {
			line += styles.Label.Render("⏎")
		}
		b.WriteString(renderRow(line, i == v.cursor, false))
		b.WriteString("\n")
	}

	if v.mode == SettingsModeConfirmReset {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render("Reset all data? PIN and settings return to defaults. (y/n)"))
	}
	return b.String()
}
