package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dori/studydeck/internal/config"
	"github.com/dori/studydeck/internal/db"
	"github.com/dori/studydeck/internal/gate"
	"github.com/dori/studydeck/internal/logging"
	"github.com/dori/studydeck/internal/notify"
	"github.com/dori/studydeck/internal/reminder"
	"github.com/dori/studydeck/internal/settings"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// App holds the application state and dependencies
type App struct {
	DB        *db.DB
	Gate      *gate.Gate
	Settings  settings.Settings
	Notifier  *notify.Notifier
	Scheduler *reminder.Scheduler
	Log       zerolog.Logger
	DataDir   string

	cfg      *Config
	logs     *logging.Log
	lockFile *flock.Flock
	started  bool
}

// Config holds application configuration
type Config struct {
	DataDir       string
	DBPath        string
	PIN           string
	Debug         bool
	StudyReminder string
	GoalsReminder string
	PINCost       int // bcrypt cost, zero for the default
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return FromEnv(config.Config{DataDir: db.DefaultDataDir(), PIN: config.DefaultPIN})
}

// FromEnv adapts loaded environment configuration
func FromEnv(c config.Config) *Config {
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = db.DefaultDataDir()
	}
	return &Config{
		DataDir:       dataDir,
		DBPath:        db.Path(dataDir),
		PIN:           c.PIN,
		Debug:         c.Debug,
		StudyReminder: c.StudyReminder,
		GoalsReminder: c.GoalsReminder,
	}
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{
		DataDir:  cfg.DataDir,
		Notifier: notify.NewNotifier(),
		cfg:      cfg,
	}

	// Acquire lock to ensure single instance
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	logs, err := logging.New(filepath.Join(cfg.DataDir, logging.FileName), cfg.Debug)
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	app.logs = logs
	app.Log = logs.Logger

	database, err := db.Open(cfg.DBPath, db.WithLogger(app.Log))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = database

	if err := app.load(); err != nil {
		app.Close()
		return nil, err
	}

	app.Scheduler = reminder.NewScheduler(time.Local, app.Log)
	app.Log.Debug().Str("data_dir", cfg.DataDir).Bool("unlocked", app.Gate.Unlocked()).Msg("app started")
	return app, nil
}

// load builds the gate and settings from local storage
func (a *App) load() error {
	var opts []gate.Option
	if a.cfg.PINCost > 0 {
		opts = append(opts, gate.WithCost(a.cfg.PINCost))
	}
	g, err := gate.New(a.DB, a.cfg.PIN, opts...)
	if err != nil {
		return fmt.Errorf("failed to load gate: %w", err)
	}
	a.Gate = g

	s, err := settings.Load(a.DB)
	if err != nil {
		// Unreadable settings fall back to defaults rather than blocking start-up
		a.Log.Warn().Err(err).Msg("settings reset to defaults")
	}
	a.Settings = s
	return nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "studydeck.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of studydeck is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// UpdateSettings autosaves next and then makes it the live settings. A
// failed save leaves the live settings unchanged.
func (a *App) UpdateSettings(next settings.Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	wrote, err := settings.Autosave(a.DB, a.Settings, next)
	if err != nil {
		return err
	}
	a.Settings = next
	a.Log.Debug().Bool("saved", wrote).Msg("settings updated")
	return nil
}

// ExportSettings writes a settings backup to path
func (a *App) ExportSettings(path string, now time.Time) error {
	return settings.ExportFile(path, a.Settings, now)
}

// ImportSettings reads a settings backup from path and applies it
func (a *App) ImportSettings(path string) (settings.Settings, error) {
	s, err := settings.ImportFile(path)
	if err != nil {
		return settings.Settings{}, err
	}
	if err := a.UpdateSettings(s); err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}

// Reset clears local storage and returns every persisted value to its
// default; the gate locks again.
func (a *App) Reset() error {
	if err := a.DB.Clear(); err != nil {
		return fmt.Errorf("failed to clear local storage: %w", err)
	}
	if err := a.load(); err != nil {
		return err
	}
	a.Log.Info().Msg("local storage reset")
	return nil
}

// ScheduleReminders registers the configured daily reminders and starts
// the scheduler. fire is called from the scheduler goroutine.
func (a *App) ScheduleReminders(fire func(reminder.Kind)) error {
	jobs := []struct {
		kind reminder.Kind
		at   string
	}{
		{reminder.KindStudy, a.cfg.StudyReminder},
		{reminder.KindGoals, a.cfg.GoalsReminder},
	}
	for _, job := range jobs {
		if job.at == "" {
			continue
		}
		kind := job.kind
		if _, err := a.Scheduler.ScheduleDaily(kind, job.at, func() { fire(kind) }); err != nil {
			return err
		}
	}
	a.Scheduler.Start()
	a.started = true
	return nil
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.started {
		a.Scheduler.Stop()
		a.started = false
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if a.logs != nil {
		if err := a.logs.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
