// Package logging builds the zerolog logger. The TUI owns stdout, so logs
// only ever go to a file.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0664

	// FileName is the debug log written inside the data directory
	FileName = "studydeck.log"
)

// Log is a logger plus the file backing it, if any
type Log struct {
	Logger zerolog.Logger
	file   *os.File
}

// New returns a file-backed logger at debug level when debug is set, and a
// disabled logger otherwise
func New(path string, debug bool) (*Log, error) {
	if !debug || path == "" {
		return &Log{Logger: zerolog.Nop()}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return nil, err
	}
	l := FromWriter(zerolog.SyncWriter(f))
	l.file = f
	return l, nil
}

// FromWriter returns a debug-level logger writing JSON lines to w
func FromWriter(w io.Writer) *Log {
	logger := zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().Timestamp().Str("app", "studydeck").
		Logger()
	return &Log{Logger: logger}
}

// Close closes the backing file
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
