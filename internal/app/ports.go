package app

import (
	"context"
	"io"

	"github.com/alexanderramin/lexis/internal/importer"
	"github.com/alexanderramin/lexis/internal/session"
)

// StudyUseCase builds a ready-to-start session runner.
type StudyUseCase interface {
	Prepare(ctx context.Context, req StudyRequest, opts ...session.Option) (*session.Runner, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
	ListWords(ctx context.Context, req WordsRequest) ([]WordView, error)
	DueCount(ctx context.Context) (int, error)
}

type ImportUseCase interface {
	ImportFile(ctx context.Context, path string, opts importer.SheetOptions) (*ImportResult, error)
	WriteTemplate(ctx context.Context, path string) error
}

type BackupUseCase interface {
	Export(ctx context.Context, w io.Writer) error
	Restore(ctx context.Context, r io.Reader) error
	Reset(ctx context.Context) error
	ListBackups(ctx context.Context, limit int) ([]BackupView, error)
}
