package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
)

type backupService struct {
	store    ProgressStore
	observer UseCaseObserver
}

func NewBackupService(store ProgressStore, observers ...UseCaseObserver) BackupService {
	return &backupService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *backupService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// Export writes the progress snapshot as JSON.
func (s *backupService) Export(ctx context.Context, w io.Writer) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "export-progress", startedAt, err, fields) }()

	data, err := s.store.Export()
	if err != nil {
		return err
	}
	fields["bytes"] = len(data)
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Restore replaces progress with a previously exported snapshot.
func (s *backupService) Restore(ctx context.Context, r io.Reader) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "restore-progress", startedAt, err, fields) }()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	fields["bytes"] = len(data)
	return s.store.Restore(ctx, data)
}

// Reset wipes all progress. The previous snapshot is kept as a backup.
func (s *backupService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { s.observe(ctx, "reset-progress", startedAt, err, nil) }()

	return s.store.Reset(ctx)
}

func (s *backupService) ListBackups(ctx context.Context, limit int) ([]app.BackupView, error) {
	backups, err := s.store.Backups(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}
	views := make([]app.BackupView, 0, len(backups))
	for _, b := range backups {
		views = append(views, app.BackupView{
			ID:        b.ID,
			Reason:    string(b.Reason),
			CreatedAt: b.CreatedAt,
			Bytes:     len(b.Value),
		})
	}
	return views, nil
}
