package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vars = []string{
	"STUDYDECK_DATA_DIR",
	"STUDYDECK_PIN",
	"STUDYDECK_THEME",
	"STUDYDECK_DEBUG",
	"STUDYDECK_STUDY_REMINDER",
	"STUDYDECK_GOALS_REMINDER",
}

// clearEnv unsets every studydeck variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range vars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Config{
		DataDir:       dir,
		PIN:           DefaultPIN,
		Theme:         DefaultTheme,
		StudyReminder: DefaultStudyReminder,
		GoalsReminder: DefaultGoalsReminder,
	}, cfg)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("STUDYDECK_DATA_DIR", dir)
	t.Setenv("STUDYDECK_PIN", "7788")
	t.Setenv("STUDYDECK_THEME", "dracula")
	t.Setenv("STUDYDECK_DEBUG", "1")
	t.Setenv("STUDYDECK_STUDY_REMINDER", "20:30")
	t.Setenv("STUDYDECK_GOALS_REMINDER", "off")

	cfg, err := Load("/unused")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "7788", cfg.PIN)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "20:30", cfg.StudyReminder)
	assert.Empty(t, cfg.GoalsReminder)
}

func TestDotEnvInDataDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STUDYDECK_THEME=gruvbox\nSTUDYDECK_PIN=1357\n"), 0600))
	t.Cleanup(func() {
		os.Unsetenv("STUDYDECK_THEME")
		os.Unsetenv("STUDYDECK_PIN")
	})

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, "1357", cfg.PIN)
}

func TestInvalidPIN(t *testing.T) {
	clearEnv(t)
	t.Setenv("STUDYDECK_PIN", "12345")
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
