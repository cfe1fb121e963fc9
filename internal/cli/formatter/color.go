package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/lexis/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelStyle colors a mastery level from red (new) to green (mastered).
func LevelStyle(l domain.Level) lipgloss.Style {
	switch l {
	case domain.LevelMastered:
		return StyleGreen
	case domain.LevelFamiliar:
		return StyleBlue
	case domain.LevelLearning:
		return StyleYellow
	default:
		return StyleDim
	}
}

// LevelBadge renders a level such as "◑ familiar".
func LevelBadge(l domain.Level) string {
	icon := "○"
	switch l {
	case domain.LevelLearning:
		icon = "◔"
	case domain.LevelFamiliar:
		icon = "◑"
	case domain.LevelMastered:
		icon = "●"
	}
	return LevelStyle(l).Render(icon + " " + l.String())
}

// AccuracyStyle is green from 80%, yellow from 50%, red below.
func AccuracyStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return StyleGreen
	case pct >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders an upper-cased section title with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
