package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"kv_store", "kv_backups"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_FormatVersionDefault(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', '{}', 'now')`)
	require.NoError(t, err)

	var v int
	require.NoError(t, db.QueryRow(`SELECT format_version FROM kv_store WHERE key='k'`).Scan(&v))
	assert.Equal(t, 1, v)
}

// A database created before format_version existed keeps its rows.
func TestMigrate_UpgradesLegacyKVStore(t *testing.T) {
	raw, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	raw.SetMaxOpenConns(1)

	_, err = raw.Exec(`CREATE TABLE kv_store (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO kv_store VALUES ('memoryAppProgress', '{"words":{}}', 'then')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(raw))

	var value string
	var version int
	require.NoError(t, raw.QueryRow(`SELECT value, format_version FROM kv_store WHERE key='memoryAppProgress'`).Scan(&value, &version))
	assert.Equal(t, `{"words":{}}`, value)
	assert.Equal(t, 1, version)
}

func TestBackupReasonConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_backups (id, key, value, reason, created_at) VALUES ('1', 'k', '{}', 'whim', 'now')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lexis.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.FileExists(t, path)
}
