// Package config loads runtime settings from the environment and optional
// .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults
const (
	DefaultPIN           = "2024"
	DefaultTheme         = "nord"
	DefaultStudyReminder = "18:00"
	DefaultGoalsReminder = "09:00"
)

// Config keeps runtime settings for studydeck
type Config struct {
	DataDir       string
	PIN           string
	Theme         string
	Debug         bool
	StudyReminder string // HH:MM, empty disables
	GoalsReminder string // HH:MM, empty disables
}

// Load reads .env from the working directory and then the data directory
// (variables already set in the environment win), then environment
// variables with defaults applied.
func Load(defaultDataDir string) (Config, error) {
	_ = godotenv.Load()

	dataDir := strings.TrimSpace(os.Getenv("STUDYDECK_DATA_DIR"))
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	if dataDir != "" {
		_ = godotenv.Load(filepath.Join(dataDir, ".env"))
	}

	cfg := Config{
		DataDir:       dataDir,
		PIN:           strings.TrimSpace(os.Getenv("STUDYDECK_PIN")),
		Theme:         strings.TrimSpace(os.Getenv("STUDYDECK_THEME")),
		Debug:         parseBool(os.Getenv("STUDYDECK_DEBUG")),
		StudyReminder: envOr("STUDYDECK_STUDY_REMINDER", DefaultStudyReminder),
		GoalsReminder: envOr("STUDYDECK_GOALS_REMINDER", DefaultGoalsReminder),
	}

	if cfg.PIN == "" {
		cfg.PIN = DefaultPIN
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}

	if len(cfg.PIN) != 4 {
		return cfg, fmt.Errorf("STUDYDECK_PIN must be 4 characters, got %d", len(cfg.PIN))
	}

	return cfg, nil
}

// envOr returns the trimmed variable, the fallback when unset, and empty
// (disabled) when set to "off"
func envOr(name, fallback string) string {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "off") {
		return ""
	}
	if v == "" {
		return fallback
	}
	return v
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
