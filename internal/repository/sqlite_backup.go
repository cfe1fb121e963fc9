package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/lexis/internal/db"
)

type SQLiteBackupRepo struct {
	db db.DBTX
}

func NewSQLiteBackupRepo(conn db.DBTX) *SQLiteBackupRepo {
	return &SQLiteBackupRepo{db: conn}
}

// Create stores b, assigning an ID and timestamp when they are unset.
func (r *SQLiteBackupRepo) Create(ctx context.Context, b *Backup) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	created := nowUTC()
	if !b.CreatedAt.IsZero() {
		created = b.CreatedAt.UTC().Format(timeLayout)
	} else {
		b.CreatedAt = parseTime(created)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_backups (id, key, value, reason, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Key, string(b.Value), string(b.Reason), created,
	)
	if err != nil {
		return fmt.Errorf("creating backup of %q: %w", b.Key, err)
	}
	return nil
}

func (r *SQLiteBackupRepo) List(ctx context.Context, key string, limit int) ([]Backup, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, key, value, reason, created_at FROM kv_backups
		WHERE key = ? ORDER BY created_at DESC, id LIMIT ?`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("listing backups of %q: %w", key, err)
	}
	defer rows.Close()

	var out []Backup
	for rows.Next() {
		var b Backup
		var value, reason, created string
		if err := rows.Scan(&b.ID, &b.Key, &value, &reason, &created); err != nil {
			return nil, fmt.Errorf("scanning backup: %w", err)
		}
		b.Value = []byte(value)
		b.Reason = BackupReason(reason)
		b.CreatedAt = parseTime(created)
		out = append(out, b)
	}
	return out, rows.Err()
}
