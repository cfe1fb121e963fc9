package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/cli/formatter"
)

func newExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write all progress as JSON to FILE or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return a.Backup.Export(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := a.Backup.Export(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing export file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", formatter.StyleGreen.Render("✔ Progress exported to"), args[0])
			return nil
		},
	}
}

func newRestoreCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace all progress with an exported JSON file",
		Long: `Replace all progress with a file written by "lexis export".

The file is validated before anything changes. The replaced progress is
kept as a backup; see "lexis backups".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening backup file: %w", err)
				}
				defer f.Close()
				r = f
			}
			if err := a.Backup.Restore(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Progress restored."))
			return nil
		},
	}
}

func newResetCmd(a *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("refusing to reset without --yes")
				}
				confirmed := false
				if err := confirmForm("Erase all progress? A backup is kept.", &confirmed).Run(); err != nil {
					return wizardErr(err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing changed."))
					return nil
				}
			}
			if err := a.Backup.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Progress reset.")+" "+
				formatter.Dim("The previous state is listed in `lexis backups`."))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newBackupsCmd(a *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List progress saved before restores and resets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backups, err := a.Backup.ListBackups(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBackups(backups))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of backups to show")
	return cmd
}
