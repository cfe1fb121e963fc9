package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/reminder"
)

// App holds the use cases CLI commands call into.
type App struct {
	Study  app.StudyUseCase
	Status app.StatusUseCase
	Import app.ImportUseCase
	Backup app.BackupUseCase

	// Remind configures `lexis remind`.
	Remind reminder.Config

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Logger receives background errors, such as failed reminder checks.
	Logger *slog.Logger

	// Now is the clock used for relative dates. Defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lexis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexis",
		Short:         "Spaced-repetition vocabulary trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStudyCmd(app),
		newStatusCmd(app),
		newCategoriesCmd(app),
		newActivityCmd(app),
		newWordsCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newRestoreCmd(app),
		newResetCmd(app),
		newBackupsCmd(app),
		newRemindCmd(app),
	)

	return root
}
