package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

// ProgressKey is the fixed key the learner's snapshot lives under.
const ProgressKey = "memoryAppProgress"

// SnapshotFormatVersion is written alongside every saved blob.
const SnapshotFormatVersion = 1

type BackupReason string

const (
	BackupRestore BackupReason = "restore"
	BackupReset   BackupReason = "reset"
)

// Backup is a copy of a snapshot taken before it was replaced.
type Backup struct {
	ID        string
	Key       string
	Value     []byte
	Reason    BackupReason
	CreatedAt time.Time
}

// SnapshotRepo stores whole progress snapshots under a key.
type SnapshotRepo interface {
	// Load returns ErrNotFound for a missing key and ErrCorruptSnapshot
	// when the stored value does not decode.
	Load(ctx context.Context, key string) (*domain.Progress, error)
	LoadRaw(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, p *domain.Progress) error
	Delete(ctx context.Context, key string) error
}

type BackupRepo interface {
	Create(ctx context.Context, b *Backup) error
	// List returns the newest backups of key first.
	List(ctx context.Context, key string, limit int) ([]Backup, error)
}
