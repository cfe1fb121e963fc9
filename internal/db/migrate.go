package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent, so the full
// list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Progress snapshots, one JSON blob per fixed key.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Blob layout version, bumped when the JSON shape changes.
	`ALTER TABLE kv_store ADD COLUMN format_version INTEGER NOT NULL DEFAULT 1`,

	// Copies of a snapshot taken before it is replaced by restore or reset.
	`CREATE TABLE IF NOT EXISTS kv_backups (
		id         TEXT PRIMARY KEY,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		reason     TEXT NOT NULL CHECK(reason IN ('restore','reset')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_kv_backups_key_created ON kv_backups(key, created_at DESC)`,
}
