package cli

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/cli/formatter"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/scheduler"
	"github.com/alexanderramin/lexis/internal/session"
)

func newStudyCmd(a *App) *cobra.Command {
	policy := policyValue(domain.PolicyDaily)
	mode := modeValue(domain.ModeFlashcard)
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Start a study session",
		Long: `Start an interactive study session.

Policies:
  daily     words due for review today (default)
  new       words never studied, up to --limit
  category  every word of --category, due words first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errNotInteractive
			}
			ctx := cmd.Context()

			req := app.NewStudyRequest()
			req.Policy = domain.SelectionPolicy(policy)
			req.Mode = domain.StudyMode(mode)
			req.Limit = limit
			req.Category = categoryTag(category)

			if !cmd.Flags().Changed("mode") {
				if err := modeForm(&req.Mode).Run(); err != nil {
					return wizardErr(err)
				}
			}
			if req.Policy == domain.PolicyCategory && req.Category == "" {
				form, err := categoryForm(ctx, a.Status, &req.Category)
				if err != nil {
					return err
				}
				if form == nil {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No categories yet. Import some words first."))
					return nil
				}
				if err := form.Run(); err != nil {
					return wizardErr(err)
				}
			}

			events := make(chan tea.Msg, 8)
			runner, err := a.Study.Prepare(ctx, req,
				session.WithTickFunc(func(d time.Duration) { trySend(events, tickMsg(d)) }),
				session.WithSpeechDone(func() { trySend(events, speechDoneMsg{}) }),
			)
			if err != nil {
				if msg, ok := nothingToStudy(err); ok {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
					return nil
				}
				return err
			}
			if err := runner.Start(ctx, req.Mode); err != nil {
				return err
			}

			model := newStudyModel(ctx, runner, events)
			p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				runner.Abandon()
				return err
			}
			return model.completeErr
		},
	}

	cmd.Flags().Var(&policy, "policy", "selection policy: daily, new, category")
	cmd.Flags().Var(&mode, "mode", "study mode: "+joinModes())
	cmd.Flags().StringVarP(&category, "category", "c", "", "category to study (implies --policy category)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum new words (new policy)")
	_ = cmd.RegisterFlagCompletionFunc("policy", completePolicies)
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("category") && !cmd.Flags().Changed("policy") {
			policy = policyValue(domain.PolicyCategory)
		}
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}
		return nil
	}

	return cmd
}

var errNotInteractive = errors.New("study needs an interactive terminal")

// nothingToStudy turns an empty selection into a friendly message.
func nothingToStudy(err error) (string, bool) {
	switch {
	case errors.Is(err, scheduler.ErrNothingDue):
		return formatter.StyleGreen.Render("✓ Nothing due today.") + " " +
			formatter.Dim("Try `lexis study --policy new` to learn new words."), true
	case errors.Is(err, scheduler.ErrNothingNew):
		return formatter.StyleGreen.Render("✓ You have started every word.") + " " +
			formatter.Dim("Import more with `lexis import`."), true
	case errors.Is(err, scheduler.ErrNothingAvailable):
		return formatter.StyleYellow.Render("No words in that category."), true
	default:
		return "", false
	}
}
