package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/cli/formatter"
)

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall progress, streak and due words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.NewStatusRequest())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}
}

func newCategoriesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show progress per category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Status.GetStatus(cmd.Context(), app.NewStatusRequest())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategories(resp.Categories))
			return nil
		},
	}
}

func newActivityCmd(a *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List recent study sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			req := app.NewStatusRequest()
			req.ActivityLimit = limit
			resp, err := a.Status.GetStatus(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivity(resp.Activities, resp.GeneratedAt))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions to show (0 for all)")
	return cmd
}

func newWordsCmd(a *App) *cobra.Command {
	var (
		category string
		dueOnly  bool
	)
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List tracked words with their review schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.WordsRequest{Category: categoryTag(category), DueOnly: dueOnly}
			words, err := a.Status.ListWords(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWords(words, a.now()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only words of this category")
	cmd.Flags().BoolVar(&dueOnly, "due", false, "only words due for review")
	return cmd
}
