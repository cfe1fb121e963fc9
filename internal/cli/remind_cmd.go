package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/cli/formatter"
	"github.com/alexanderramin/lexis/internal/reminder"
)

func newRemindCmd(a *App) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print a reminder whenever words are due",
		Long: `Check for due words on a fixed interval and print a reminder while
inside the configured hours. Runs until interrupted.

Configure with LEXIS_REMIND_EVERY, LEXIS_REMIND_START_HOUR and
LEXIS_REMIND_END_HOUR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := reminder.New(a.Status, reminder.WriterNotifier{W: cmd.OutOrStdout()}, a.Remind,
				reminder.WithLogger(a.Logger))
			if once {
				notified, err := r.Check(cmd.Context())
				if err != nil {
					return err
				}
				if !notified {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing to remind about."))
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := r.Start(ctx); err != nil {
				return err
			}
			defer r.Stop()
			fmt.Fprintf(cmd.ErrOrStderr(), "%s every %s between %02d:00 and %02d:59. Ctrl+C to stop.\n",
				formatter.Dim("Checking"), a.Remind.Every, a.Remind.StartHour, a.Remind.EndHour)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "check once and exit")
	return cmd
}
