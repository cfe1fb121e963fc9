package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/cli/formatter"
	"github.com/alexanderramin/lexis/internal/domain"
)

// lexisHuhTheme returns a huh theme matching the Gruvbox palette used by
// the formatter.
func lexisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func modeOptions() []huh.Option[domain.StudyMode] {
	opts := make([]huh.Option[domain.StudyMode], 0, len(domain.StudyModes))
	for _, m := range domain.StudyModes {
		opts = append(opts, huh.NewOption(formatter.ModeIcon(m)+" "+m.Label(), m))
	}
	return opts
}

// modeForm asks which study mode to use.
func modeForm(result *domain.StudyMode) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.StudyMode]().
				Title("How do you want to study?").
				Options(modeOptions()...).
				Value(result),
		),
	).WithTheme(lexisHuhTheme()).WithShowHelp(false)
}

// categoryForm lists categories with their due counts. Returns nil when
// there is nothing to pick from.
func categoryForm(ctx context.Context, status app.StatusUseCase, result *string) (*huh.Form, error) {
	resp, err := status.GetStatus(ctx, app.NewStatusRequest())
	if err != nil {
		return nil, err
	}
	if len(resp.Categories) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(resp.Categories))
	for _, c := range resp.Categories {
		label := fmt.Sprintf("%s %s  (%d words, %d due)", c.Icon, c.DisplayName, c.Total, c.Due)
		options = append(options, huh.NewOption(label, c.Category))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which category?").
				Options(options...).
				Height(12).
				Value(result),
		),
	).WithTheme(lexisHuhTheme()).WithShowHelp(false), nil
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(lexisHuhTheme()).WithShowHelp(false)
}

var errCancelled = errors.New("cancelled")

// wizardErr maps an aborted form (esc, ctrl+c) to errCancelled.
func wizardErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errCancelled
	}
	return err
}
