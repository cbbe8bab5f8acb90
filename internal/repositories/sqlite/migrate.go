package sqlite

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version of the tracker database
const SchemaVersion = 1

// Migrate ensures the schema exists and is at SchemaVersion
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`); err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []struct {
		name  string
		query string
	}{
		{
			name: "drinks table",
			query: `
				CREATE TABLE IF NOT EXISTS drinks (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					name TEXT NOT NULL,
					volume_ml REAL NOT NULL,
					abv REAL NOT NULL,
					timestamp_ms INTEGER NOT NULL,
					is_chug INTEGER NOT NULL DEFAULT 0,
					type TEXT NOT NULL,
					icon TEXT NOT NULL DEFAULT ''
				);`,
		},
		{
			name:  "idx_drinks_user_timestamp",
			query: `CREATE INDEX IF NOT EXISTS idx_drinks_user_timestamp ON drinks(user_id, timestamp_ms);`,
		},
		{
			name: "profiles table",
			query: `
				CREATE TABLE IF NOT EXISTS profiles (
					user_id TEXT PRIMARY KEY,
					weight_kg REAL NOT NULL,
					gender TEXT NOT NULL,
					drinking_speed TEXT NOT NULL,
					unit TEXT NOT NULL DEFAULT '',
					updated_at_ms INTEGER NOT NULL
				);`,
		},
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt.query); err != nil {
			return fmt.Errorf("migrate: create %s: %w", stmt.name, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion); err != nil {
		return fmt.Errorf("migrate: record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}

	return nil
}
