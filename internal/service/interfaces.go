package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/repository"
)

// ProgressStore is the slice of *store.Store the services rely on.
type ProgressStore interface {
	Now() time.Time
	Location() *time.Location
	Words() []domain.WordRecord
	Translations() []string
	Snapshot() *domain.Progress
	Reload(ctx context.Context) error

	Grade(ctx context.Context, word string, difficulty int) (*domain.WordRecord, error)
	CompleteSession(ctx context.Context, summary domain.SessionSummary) error
	Seed(ctx context.Context, vocab domain.Vocabulary) (int, error)

	Export() ([]byte, error)
	Restore(ctx context.Context, data []byte) error
	Reset(ctx context.Context) error
	Backups(ctx context.Context, limit int) ([]repository.Backup, error)
}

type StudyService interface {
	app.StudyUseCase
}

type StatusService interface {
	app.StatusUseCase
}

type ImportService interface {
	app.ImportUseCase
}

type BackupService interface {
	app.BackupUseCase
}
