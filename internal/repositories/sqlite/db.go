// Package sqlite opens the local database used by the command-line tracker.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the default filesystem location for the tracker database
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "tipsy", "tipsy.db"), nil
}

// Open opens (or creates) a SQLite database at path and applies migrations
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open: empty db path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("open: create db dir: %w", err)
	}

	dsn := "file:" + path + "?mode=rwc&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: sql open: %w", err)
	}

	// A single writer avoids SQLITE_BUSY between the watcher and commands
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: ping: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: migrate: %w", err)
	}

	return db, nil
}
