package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCreatesAndMigrates(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "tipsy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var current int
	require.NoError(t, db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current))
	require.Equal(t, SchemaVersion, current)

	// Running again is a no-op
	require.NoError(t, Migrate(db))
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	require.Error(t, err)
}
