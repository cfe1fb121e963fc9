package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/lexis/internal/cli"
	"github.com/alexanderramin/lexis/internal/config"
	"github.com/alexanderramin/lexis/internal/db"
	"github.com/alexanderramin/lexis/internal/importer"
	"github.com/alexanderramin/lexis/internal/reminder"
	"github.com/alexanderramin/lexis/internal/repository"
	"github.com/alexanderramin/lexis/internal/service"
	"github.com/alexanderramin/lexis/internal/speech"
	"github.com/alexanderramin/lexis/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Diagnostics go to stderr, or to LEXIS_LOG_FILE when set.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	level := slog.LevelWarn
	if cfg.LogUseCases {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	vocab, dups, err := importer.DefaultVocabulary()
	if err != nil {
		return fmt.Errorf("loading built-in vocabulary: %w", err)
	}
	if len(dups) > 0 {
		logger.Debug("built-in vocabulary lists words twice", "words", dups)
	}

	ctx := context.Background()
	st, err := store.Open(ctx,
		repository.NewSQLiteSnapshotRepo(database),
		db.NewSQLiteUnitOfWork(database),
		vocab,
		store.WithLocation(cfg.Location()),
		store.WithBackups(repository.NewSQLiteBackupRepo(database)),
		store.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("opening progress: %w", err)
	}

	speaker, err := speech.New(speech.Config{
		Enabled: cfg.SpeechEnabled,
		Command: cfg.SpeechCommand,
		Rate:    cfg.SpeechRate,
	})
	if err != nil {
		logger.Debug("speech unavailable", "error", err)
	}
	if es, ok := speaker.(*speech.ExecSpeaker); ok {
		defer es.Stop()
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logOut))
	}

	app := &cli.App{
		Study:  service.NewStudyService(st, speaker, cfg.NewWordsLimit, service.WithStudyObservers(observers...)),
		Status: service.NewStatusService(st, observers...),
		Import: service.NewImportService(st, observers...),
		Backup: service.NewBackupService(st, observers...),
		Remind: reminder.Config{
			Every:     cfg.RemindEvery,
			StartHour: cfg.RemindStartHour,
			EndHour:   cfg.RemindEndHour,
			Location:  cfg.Location(),
		},
		Logger: logger,
	}

	// Interactive commands need a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
