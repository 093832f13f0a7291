package views

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/studydeck/internal/app"
	"github.com/dori/studydeck/internal/config"
	"github.com/dori/studydeck/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSettingsView(t *testing.T) (SettingsView, *app.App) {
	t.Helper()
	cfg := app.FromEnv(config.Config{DataDir: t.TempDir(), PIN: "2024"})
	cfg.PINCost = bcrypt.MinCost
	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	deps := NewDeps(a, a.Settings, func() time.Time { return fixedNow })
	return NewSettingsView(deps), a
}

// rowIndex finds the settings row with the given label
func rowIndex(t *testing.T, v SettingsView, label string) int {
	t.Helper()
	for i, row := range v.rows {
		if row.label == label {
			return i
		}
	}
	t.Fatalf("no settings row %q", label)
	return -1
}

func moveTo(t *testing.T, v SettingsView, label string) SettingsView {
	t.Helper()
	v.cursor = rowIndex(t, v, label)
	return v
}

// drain runs cmd and returns the messages it produced, unpacking batches
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSettingsCycleTheme(t *testing.T) {
	v, a := newSettingsView(t)
	v = moveTo(t, v, "Theme")

	_, cmd := press(t, v, "l")
	assert.Equal(t, "dracula", a.Settings.Preferences.Theme)

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	changed, ok := msgs[0].(SettingsChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "dracula", changed.Settings.Preferences.Theme)

	_, _ = press(t, v, "h", "h")
	assert.Equal(t, "catppuccin", a.Settings.Preferences.Theme)
}

func TestSettingsStudyLimits(t *testing.T) {
	v, a := newSettingsView(t)

	v = moveTo(t, v, "Focus time")
	for i := 0; i < 30; i++ {
		v, _ = press(t, v, "l")
	}
	assert.Equal(t, settings.MaxFocusTime, a.Settings.StudySettings.DefaultFocusTime)

	v = moveTo(t, v, "Break time")
	for i := 0; i < 10; i++ {
		v, _ = press(t, v, "h")
	}
	assert.Equal(t, 1, a.Settings.StudySettings.DefaultBreakTime)

	v = moveTo(t, v, "Auto start breaks")
	press(t, v, " ")
	assert.True(t, a.Settings.StudySettings.AutoStartBreaks)
}

func TestSettingsNotificationToggle(t *testing.T) {
	v, a := newSettingsView(t)
	v = moveTo(t, v, "Daily goals")

	press(t, v, "enter")
	assert.False(t, a.Settings.Notifications.DailyGoals)
}

func TestSettingsChangePIN(t *testing.T) {
	v, a := newSettingsView(t)
	v = moveTo(t, v, "Change PIN")

	v, _ = press(t, v, "enter")
	require.True(t, v.IsInputMode())
	v = typeText(t, v, "9999")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "1234")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "1234")
	v, _ = press(t, v, "enter")
	assert.True(t, v.IsInputMode())
	assert.Equal(t, "Current PIN is incorrect", v.pinErr)

	v, _ = press(t, v, "esc")
	assert.False(t, v.IsInputMode())

	v, _ = press(t, v, "enter")
	v = typeText(t, v, "2024")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "1234")
	v, _ = press(t, v, "tab")
	v = typeText(t, v, "1234")
	v, cmd := press(t, v, "enter")
	assert.False(t, v.IsInputMode())
	assert.Equal(t, []tea.Msg{StatusMsg{Message: "PIN updated"}}, drain(cmd))

	require.NoError(t, a.Gate.Attempt("1234"))
}

func TestSettingsLock(t *testing.T) {
	v, a := newSettingsView(t)
	require.NoError(t, a.Gate.Attempt("2024"))

	v = moveTo(t, v, "Lock dashboard")
	_, cmd := press(t, v, "enter")
	assert.Equal(t, []tea.Msg{LockedMsg{}}, drain(cmd))
	assert.False(t, a.Gate.Unlocked())
}

func TestSettingsExportImport(t *testing.T) {
	v, a := newSettingsView(t)
	path := filepath.Join(t.TempDir(), "backup.json")

	next := a.Settings
	next.Preferences.Language = "fr"
	require.NoError(t, a.UpdateSettings(next))

	v = moveTo(t, v, "Export settings")
	v, _ = press(t, v, "enter")
	v.form.SetValue("path", path)
	v, cmd := press(t, v, "enter")

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	next2, cmd := v.Update(msgs[0])
	v = next2.(SettingsView)
	assert.Equal(t, []tea.Msg{StatusMsg{Message: "Settings exported to " + path}}, drain(cmd))

	next.Preferences.Language = "en"
	require.NoError(t, a.UpdateSettings(next))

	v = moveTo(t, v, "Import settings")
	v, _ = press(t, v, "enter")
	v = typeText(t, v, path)
	v, cmd = press(t, v, "enter")
	msgs = drain(cmd)
	require.Len(t, msgs, 1)
	_, cmd = v.Update(msgs[0])
	assert.Len(t, drain(cmd), 2)
	assert.Equal(t, "fr", a.Settings.Preferences.Language)
}

func TestSettingsImportRejectsMalformed(t *testing.T) {
	v, a := newSettingsView(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	v = moveTo(t, v, "Import settings")
	v, _ = press(t, v, "enter")
	v = typeText(t, v, path)
	v, cmd := press(t, v, "enter")

	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	_, cmd = v.Update(msgs[0])
	msgs = drain(cmd)
	require.Len(t, msgs, 1)
	errMsg, ok := msgs[0].(ErrorMsg)
	require.True(t, ok)
	assert.ErrorIs(t, errMsg.Err, settings.ErrInvalidFormat)
	assert.Equal(t, settings.Defaults(), a.Settings)
}

func TestSettingsResetConfirm(t *testing.T) {
	v, a := newSettingsView(t)
	require.NoError(t, a.Gate.Attempt("2024"))
	next := a.Settings
	next.Preferences.Theme = "gruvbox"
	require.NoError(t, a.UpdateSettings(next))

	v = moveTo(t, v, "Reset all data")
	v, _ = press(t, v, "enter")
	assert.True(t, v.IsInputMode())
	v, cmd := press(t, v, "n")
	assert.Nil(t, cmd)
	assert.Equal(t, "gruvbox", a.Settings.Preferences.Theme)

	v, _ = press(t, v, "enter")
	_, cmd = press(t, v, "y")
	assert.Equal(t, []tea.Msg{ResetMsg{}}, drain(cmd))
	assert.Equal(t, settings.Defaults(), a.Settings)
	assert.False(t, a.Gate.Unlocked())
}
