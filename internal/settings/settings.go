// Package settings holds user preferences, study defaults and notification
// toggles, plus their JSON backup format.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the local storage key settings are autosaved under
const StorageKey = "study-settings"

// Preferences are general display and behavior preferences
type Preferences struct {
	Theme        string `json:"theme"`
	Language     string `json:"language"`
	TimeFormat   string `json:"timeFormat"`
	StartOfWeek  string `json:"startOfWeek"`
	AutoSave     bool   `json:"autoSave"`
	SoundEffects bool   `json:"soundEffects"`
}

// StudySettings are the focus timer defaults
type StudySettings struct {
	DefaultFocusTime        int  `json:"defaultFocusTime"`
	DefaultBreakTime        int  `json:"defaultBreakTime"`
	LongBreakTime           int  `json:"longBreakTime"`
	SessionsBeforeLongBreak int  `json:"sessionsBeforeLongBreak"`
	AutoStartBreaks         bool `json:"autoStartBreaks"`
	AutoStartSessions       bool `json:"autoStartSessions"`
}

// Notifications toggles each kind of desktop notification
type Notifications struct {
	StudyReminders    bool `json:"studyReminders"`
	BreakReminders    bool `json:"breakReminders"`
	AchievementAlerts bool `json:"achievementAlerts"`
	DailyGoals        bool `json:"dailyGoals"`
}

// Settings is the full settings state
type Settings struct {
	Preferences   Preferences   `json:"settings"`
	StudySettings StudySettings `json:"studySettings"`
	Notifications Notifications `json:"notifications"`
}

// Allowed preference values, in form order
var (
	Languages    = []string{"en", "hi", "es", "fr"}
	TimeFormats  = []string{"24h", "12h"}
	StartOfWeeks = []string{"monday", "sunday"}
)

// Study setting limits, in minutes or sessions
const (
	MaxFocusTime = 120
	MaxBreakTime = 60
	MaxSessions  = 12
)

var ErrInvalidSettings = errors.New("invalid settings")

// Defaults returns the settings used before anything is changed
func Defaults() Settings {
	return Settings{
		Preferences: Preferences{
			Theme:        "nord",
			Language:     "en",
			TimeFormat:   "24h",
			StartOfWeek:  "monday",
			AutoSave:     true,
			SoundEffects: true,
		},
		StudySettings: StudySettings{
			DefaultFocusTime:        25,
			DefaultBreakTime:        5,
			LongBreakTime:           15,
			SessionsBeforeLongBreak: 4,
		},
		Notifications: Notifications{
			StudyReminders:    true,
			BreakReminders:    true,
			AchievementAlerts: true,
			DailyGoals:        true,
		},
	}
}

// Validate checks every enumerated preference and numeric range
func (s Settings) Validate() error {
	p := s.Preferences
	if p.Theme == "" {
		return fmt.Errorf("%w: theme is empty", ErrInvalidSettings)
	}
	if !contains(Languages, p.Language) {
		return fmt.Errorf("%w: language %q", ErrInvalidSettings, p.Language)
	}
	if !contains(TimeFormats, p.TimeFormat) {
		return fmt.Errorf("%w: time format %q", ErrInvalidSettings, p.TimeFormat)
	}
	if !contains(StartOfWeeks, p.StartOfWeek) {
		return fmt.Errorf("%w: start of week %q", ErrInvalidSettings, p.StartOfWeek)
	}

	st := s.StudySettings
	switch {
	case st.DefaultFocusTime < 1 || st.DefaultFocusTime > MaxFocusTime:
		return fmt.Errorf("%w: focus time %d", ErrInvalidSettings, st.DefaultFocusTime)
	case st.DefaultBreakTime < 1 || st.DefaultBreakTime > MaxBreakTime:
		return fmt.Errorf("%w: break time %d", ErrInvalidSettings, st.DefaultBreakTime)
	case st.LongBreakTime < 1 || st.LongBreakTime > MaxBreakTime:
		return fmt.Errorf("%w: long break time %d", ErrInvalidSettings, st.LongBreakTime)
	case st.SessionsBeforeLongBreak < 1 || st.SessionsBeforeLongBreak > MaxSessions:
		return fmt.Errorf("%w: sessions before long break %d", ErrInvalidSettings, st.SessionsBeforeLongBreak)
	}
	return nil
}

// Storage is the persisted key/value store settings are autosaved to
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// Load reads autosaved settings, falling back to Defaults when nothing
// has been saved
func Load(storage Storage) (Settings, error) {
	raw, ok, err := storage.GetItem(StorageKey)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok {
		return Defaults(), nil
	}

	s := Defaults()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Defaults(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Save persists s under StorageKey
func Save(storage Storage, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := storage.SetItem(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Autosave persists next when autosave is on. Switching autosave off is
// itself saved so the choice survives a restart. Reports whether anything
// was written.
func Autosave(storage Storage, prev, next Settings) (bool, error) {
	if !prev.Preferences.AutoSave && !next.Preferences.AutoSave {
		return false, nil
	}
	if err := Save(storage, next); err != nil {
		return false, err
	}
	return true, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
