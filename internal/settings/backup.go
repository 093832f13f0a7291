package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// BackupFileName is the default export file name
const BackupFileName = "study-data-backup.json"

// ErrInvalidFormat is returned when an import file is not a settings backup
var ErrInvalidFormat = errors.New("invalid file format")

// Backup is the export file layout
type Backup struct {
	Settings
	ExportDate string `json:"exportDate"`
}

// Export writes s to w as two-space indented JSON stamped with now
func Export(w io.Writer, s Settings, now time.Time) error {
	b := Backup{Settings: s, ExportDate: now.UTC().Format("2006-01-02T15:04:05.000Z")}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Import parses a backup from r. The file is decoded over Defaults field by
// field: any field it leaves out, including fields missing from a section
// that is present, keeps its default value. Malformed JSON or out-of-range
// values return ErrInvalidFormat.
func Import(r io.Reader) (Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read backup: %w", err)
	}

	b := Backup{Settings: Defaults()}
	if err := json.Unmarshal(data, &b); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := b.Settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return b.Settings, nil
}

// ExportFile writes a backup to path
func ExportFile(path string, s Settings, now time.Time) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	if err := Export(f, s, now); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportFile reads a backup from path
func ImportFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()
	return Import(f)
}
