package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dori/studydeck/internal/config"
	"github.com/dori/studydeck/internal/reminder"
	"github.com/dori/studydeck/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := FromEnv(config.Config{
		DataDir:       t.TempDir(),
		PIN:           "2024",
		StudyReminder: "18:00",
		GoalsReminder: "09:00",
	})
	cfg.PINCost = bcrypt.MinCost
	return cfg
}

func openApp(t *testing.T, cfg *Config) *App {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func TestSingleInstance(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)

	_, err := New(cfg)
	assert.ErrorContains(t, err, "another instance")

	require.NoError(t, a.Close())
	b := openApp(t, cfg)
	require.NoError(t, b.Close())
}

func TestGateSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)
	assert.False(t, a.Gate.Unlocked())
	require.NoError(t, a.Gate.Attempt("2024"))
	require.NoError(t, a.Close())

	a = openApp(t, cfg)
	defer a.Close()
	assert.True(t, a.Gate.Unlocked())
}

func TestSettingsAutosave(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)

	next := a.Settings
	next.Preferences.Theme = "gruvbox"
	require.NoError(t, a.UpdateSettings(next))

	bad := next
	bad.StudySettings.DefaultFocusTime = 0
	assert.ErrorIs(t, a.UpdateSettings(bad), settings.ErrInvalidSettings)
	assert.Equal(t, "gruvbox", a.Settings.Preferences.Theme)
	require.NoError(t, a.Close())

	a = openApp(t, cfg)
	defer a.Close()
	assert.Equal(t, "gruvbox", a.Settings.Preferences.Theme)
}

func TestFailedSaveKeepsLiveSettings(t *testing.T) {
	a := openApp(t, testConfig(t))
	defer a.Close()

	require.NoError(t, a.DB.Close())
	next := a.Settings
	next.Preferences.Theme = "dracula"
	assert.Error(t, a.UpdateSettings(next))
	assert.Equal(t, settings.Defaults().Preferences.Theme, a.Settings.Preferences.Theme)
}

func TestExportImport(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)
	defer a.Close()

	path := filepath.Join(t.TempDir(), settings.BackupFileName)
	changed := a.Settings
	changed.Notifications.BreakReminders = false
	require.NoError(t, a.UpdateSettings(changed))
	require.NoError(t, a.ExportSettings(path, time.Now()))

	require.NoError(t, a.UpdateSettings(settings.Defaults()))
	got, err := a.ImportSettings(path)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
	assert.Equal(t, changed, a.Settings)
}

func TestReset(t *testing.T) {
	cfg := testConfig(t)
	a := openApp(t, cfg)
	defer a.Close()

	require.NoError(t, a.Gate.Attempt("2024"))
	require.NoError(t, a.Gate.ChangePIN("2024", "1111", "1111"))
	next := a.Settings
	next.Preferences.Language = "fr"
	require.NoError(t, a.UpdateSettings(next))

	require.NoError(t, a.Reset())
	assert.False(t, a.Gate.Unlocked())
	assert.Equal(t, settings.Defaults(), a.Settings)
	assert.NoError(t, a.Gate.Attempt("2024"))

	keys, err := a.DB.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"study-auth"}, keys)
}

func TestScheduleReminders(t *testing.T) {
	cfg := testConfig(t)
	cfg.GoalsReminder = ""
	a := openApp(t, cfg)

	require.NoError(t, a.ScheduleReminders(func(reminder.Kind) {}))
	assert.Equal(t, 1, a.Scheduler.Entries())
	require.NoError(t, a.Close())
}

func TestScheduleRemindersRejectsBadTime(t *testing.T) {
	cfg := testConfig(t)
	cfg.StudyReminder = "25:00"
	a := openApp(t, cfg)
	defer a.Close()

	assert.Error(t, a.ScheduleReminders(func(reminder.Kind) {}))
}
