package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// FileName is the local storage database inside the data directory
const FileName = "studydeck.db"

// DB is the dashboard's local storage: a single sqlite key/value table
// holding the auth flag, the PIN hash and the autosaved settings
type DB struct {
	*sql.DB
	log zerolog.Logger
}

// Option configures Open
type Option func(*DB)

// WithLogger sends migration output to log at debug level
func WithLogger(log zerolog.Logger) Option {
	return func(db *DB) { db.log = log }
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studydeck"
	}
	return filepath.Join(home, ".local", "share", "studydeck")
}

// Path returns the local storage file inside dataDir
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Open opens local storage at dbPath, creating the file and the
// local_storage table on first use
func Open(dbPath string, opts ...Option) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", dbPath)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: writes are tiny and a second pool member only adds
	// SQLITE_BUSY retries
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{DB: sqlDB, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(db)
	}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// gooseLogger forwards goose output to zerolog; stdout belongs to the TUI
type gooseLogger struct {
	log zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// migrate runs the embedded migrations
func (db *DB) migrate() error {
	goose.SetLogger(gooseLogger{log: db.log})
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Transaction executes a function within a transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetItem returns the value stored under key. The boolean is false when the
// key has never been set.
func (db *DB) GetItem(key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// SetItem stores value under key, replacing any previous value
func (db *DB) SetItem(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	return err
}

// RemoveItem deletes key. Removing an unknown key is not an error.
func (db *DB) RemoveItem(key string) error {
	_, err := db.Exec(`DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

// Clear deletes every stored key
func (db *DB) Clear() error {
	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM local_storage`)
		return err
	})
}

// Keys returns every stored key in sorted order
func (db *DB) Keys() ([]string, error) {
	rows, err := db.Query(`SELECT key FROM local_storage ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
