package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/cli/formatter"
	"github.com/alexanderramin/lexis/internal/importer"
)

func newImportCmd(a *App) *cobra.Command {
	var (
		opts     importer.SheetOptions
		template string
	)
	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Add words from an .xlsx, .csv or .json file",
		Long: `Add words from a spreadsheet or dataset file.

Spreadsheets and CSV files have the columns word, translation, category and
an optional group, with one header row. Words already tracked keep their
progress. Use --template to write an empty workbook with the right headers.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if template != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if template != "" {
				if err := a.Import.WriteTemplate(cmd.Context(), template); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ Template written to"), template)
				return nil
			}
			if opts.StartRow < 0 {
				return fmt.Errorf("--start-row must not be negative")
			}
			res, err := a.Import.ImportFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "worksheet to read (default: first sheet)")
	cmd.Flags().IntVar(&opts.StartRow, "start-row", 0, "first data row, 1-based (default: 2)")
	cmd.Flags().StringVar(&template, "template", "", "write an empty .xlsx template to `PATH` and exit")
	return cmd
}
