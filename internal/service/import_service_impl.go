package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/importer"
)

type importService struct {
	store    ProgressStore
	observer UseCaseObserver
}

func NewImportService(store ProgressStore, observers ...UseCaseObserver) ImportService {
	return &importService{store: store, observer: useCaseObserverOrNoop(observers)}
}

// ImportFile adds every word of the file not already tracked. Existing
// records, and their progress, are never overwritten.
func (s *importService) ImportFile(ctx context.Context, path string, opts importer.SheetOptions) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-words",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var ds *importer.Dataset
	ds, err = importer.LoadFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	vocab, dups, err := importer.Convert(ds)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	added, err := s.store.Seed(ctx, vocab)
	if err != nil {
		return nil, fmt.Errorf("adding words: %w", err)
	}

	total := vocab.Len()
	fields["total"] = total
	fields["added"] = added
	return &app.ImportResult{
		Path:       path,
		Total:      total,
		Added:      added,
		Skipped:    total - added,
		Duplicates: dups,
	}, nil
}

func (s *importService) WriteTemplate(_ context.Context, path string) error {
	if err := importer.WriteXLSXTemplate(path); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}
