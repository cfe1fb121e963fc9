package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/lexis/internal/db"
	"github.com/alexanderramin/lexis/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo on the kv_store table.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) LoadRaw(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("snapshot %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLiteSnapshotRepo) Load(ctx context.Context, key string) (*domain.Progress, error) {
	raw, err := r.LoadRaw(ctx, key)
	if err != nil {
		return nil, err
	}
	var p domain.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decoding snapshot %q: %w: %v", key, ErrCorruptSnapshot, err)
	}
	return &p, nil
}

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, key string, p *domain.Progress) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", key, err)
	}
	query := `INSERT INTO kv_store (key, value, updated_at, format_version)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			format_version = excluded.format_version`
	if _, err := r.db.ExecContext(ctx, query, key, string(blob), nowUTC(), SnapshotFormatVersion); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting snapshot %q: %w", key, err)
	}
	return nil
}
