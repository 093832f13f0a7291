package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/studydeck/internal/app"
	"github.com/dori/studydeck/internal/config"
	"github.com/dori/studydeck/internal/db"
	"github.com/dori/studydeck/internal/reminder"
	"github.com/dori/studydeck/internal/settings"
	"github.com/dori/studydeck/internal/ui"
	"github.com/dori/studydeck/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		if handled, err := runSubcommand(os.Args[1], os.Args[2:]); handled {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Parse flags for TUI mode
	viewFlag := flag.String("view", "dashboard", "Starting panel (dashboard, resources, calendar, focus, videos, progress, community, daily, profile, settings)")
	themeFlag := flag.String("theme", "", "Theme name (nord, dracula, gruvbox, catppuccin)")
	flag.Parse()

	// Run TUI
	if err := runTUI(*viewFlag, *themeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSubcommand runs name when it is a subcommand; flags fall through to
// the TUI
func runSubcommand(name string, args []string) (bool, error) {
	switch name {
	case "version":
		fmt.Printf("studydeck v%s\n", version)
		return true, nil
	case "help", "-h", "--help":
		printHelp()
		return true, nil
	case "export":
		return true, handleExport(args)
	case "import":
		return true, handleImport(args)
	case "lock":
		return true, handleLock()
	case "reset":
		return true, handleReset()
	}
	return false, nil
}

func printHelp() {
	help := `studydeck - A terminal study dashboard

Usage:
  studydeck                    Start the TUI
  studydeck export [file]      Write settings to a JSON backup
  studydeck import <file>      Load settings from a JSON backup
  studydeck lock               Require the PIN on next start
  studydeck reset              Clear all saved data
  studydeck version            Show version
  studydeck help               Show this help

TUI Options:
  --view <name>     Starting panel (dashboard, resources, calendar, focus,
                    videos, progress, community, daily, profile, settings)
  --theme <name>    Theme (nord, dracula, gruvbox, catppuccin)

Environment (also read from .env):
  STUDYDECK_DATA_DIR          Data directory (default ~/.local/share/studydeck)
  STUDYDECK_PIN               Initial 4-digit PIN (default 2024)
  STUDYDECK_THEME             Theme used before one is saved
  STUDYDECK_DEBUG             Write a debug log to the data directory
  STUDYDECK_STUDY_REMINDER    Daily study reminder, HH:MM or "off"
  STUDYDECK_GOALS_REMINDER    Daily goals reminder, HH:MM or "off"

Keybindings:
  Panels:       1-9, 0        Switch panels
  General:      ctrl+t        Cycle theme
                ctrl+l        Lock
                ?             Help
                q             Quit`

	fmt.Println(help)
}

// openApp loads configuration and opens the application
func openApp() (*app.App, config.Config, error) {
	cfg, err := config.Load(db.DefaultDataDir())
	if err != nil {
		return nil, cfg, err
	}
	application, err := app.New(app.FromEnv(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return application, cfg, nil
}

func handleExport(args []string) error {
	path := settings.BackupFileName
	if len(args) > 0 {
		path = args[0]
	}

	application, _, err := openApp()
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.ExportSettings(path, time.Now()); err != nil {
		return err
	}
	fmt.Printf("Exported settings to %s\n", path)
	return nil
}

func handleImport(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: studydeck import <file>")
	}

	application, _, err := openApp()
	if err != nil {
		return err
	}
	defer application.Close()

	s, err := application.ImportSettings(args[0])
	if errors.Is(err, settings.ErrInvalidFormat) {
		return fmt.Errorf("invalid file format: %s", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("Imported settings (theme %s, focus %d min)\n",
		s.Preferences.Theme, s.StudySettings.DefaultFocusTime)
	return nil
}

func handleLock() error {
	application, _, err := openApp()
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.Gate.Lock(); err != nil {
		return err
	}
	fmt.Println("Locked. The PIN is required on next start.")
	return nil
}

func handleReset() error {
	application, _, err := openApp()
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.Reset(); err != nil {
		return err
	}
	fmt.Println("All saved data cleared.")
	return nil
}

func runTUI(startView, themeName string) error {
	view, err := ui.ParseView(startView)
	if err != nil {
		return err
	}

	application, cfg, err := openApp()
	if err != nil {
		return err
	}
	defer application.Close()

	// A --theme flag wins for this run; STUDYDECK_THEME applies only until a
	// theme has been saved
	if themeName == "" && application.Settings.Preferences.Theme == settings.Defaults().Preferences.Theme {
		themeName = cfg.Theme
	}
	if themeName != "" {
		if _, ok := theme.ByName(themeName); !ok {
			return fmt.Errorf("unknown theme %q", themeName)
		}
		application.Settings.Preferences.Theme = themeName
	}

	model := ui.NewRootModel(application, ui.WithStartView(view))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if err := application.ScheduleReminders(func(k reminder.Kind) {
		p.Send(ui.ReminderMsg{Kind: k})
	}); err != nil {
		return err
	}

	_, err = p.Run()
	return err
}
