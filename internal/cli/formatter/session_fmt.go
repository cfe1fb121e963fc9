package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/session"
)

// FormatSessionHeader is the line above every card: mode, position and
// running score.
func FormatSessionHeader(mode domain.StudyMode, card session.Card, stats domain.SessionStats, elapsed time.Duration) string {
	pct := 0
	if card.Total > 0 {
		pct = card.Index * 100 / card.Total
	}
	return fmt.Sprintf("%s %s  %s  %s  %s  %s",
		ModeIcon(mode), Bold(mode.Label()),
		Dim(fmt.Sprintf("%d/%d", card.Index+1, card.Total)),
		RenderCompactBar(pct, 16),
		StyleGreen.Render(fmt.Sprintf("✓ %d", stats.Correct))+" "+StyleRed.Render(fmt.Sprintf("✗ %d", stats.Incorrect)),
		Dim(FormatClock(elapsed)),
	)
}

// FormatPrompt renders the question side of a card. Listening prompts hide
// the word until answered.
func FormatPrompt(mode domain.StudyMode, card session.Card) string {
	var b strings.Builder
	cat := domain.CategoryIcon(card.Record.Category) + " " + domain.FormatCategoryName(card.Record.Category)
	b.WriteString(Dim(cat) + "\n\n")

	switch mode {
	case domain.ModeListening:
		b.WriteString(StylePurple.Render("🔊 Listen and type what you hear"))
		if card.AudioErr != nil {
			b.WriteString("\n" + StyleYellow.Render("Audio unavailable: "+card.AudioErr.Error()))
		}
	default:
		b.WriteString(StyleHeader.Render(card.Prompt.Question))
	}
	return b.String()
}

// FormatOptions renders numbered quiz choices, marking the selected one.
func FormatOptions(options []string, selected int) string {
	var b strings.Builder
	for i, opt := range options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == selected {
			b.WriteString(StyleBlue.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + StyleFg.Render(line) + "\n")
		}
	}
	return b.String()
}

// FormatVerdict renders the feedback after an answer.
func FormatVerdict(v session.Verdict) string {
	var b strings.Builder
	if v.Correct {
		b.WriteString(StyleGreen.Render("✔ Correct!"))
	} else {
		b.WriteString(StyleRed.Render("✘ Not quite."))
		if v.Expected != "" {
			b.WriteString(" " + Dim("Answer:") + " " + Bold(v.Expected))
		}
	}
	if v.Given != "" && !v.Correct {
		b.WriteString("\n" + Dim("You wrote: ") + StyleFg.Render(v.Given))
	}
	if v.Similarity > 0 && v.Similarity < 1 {
		b.WriteString("\n" + Dim(fmt.Sprintf("Similarity %.0f%%", v.Similarity*100)))
	}
	if v.Record != nil {
		b.WriteString("\n" + LevelBadge(v.Record.Level) + Dim(fmt.Sprintf("  next review in %s", Plural(v.Record.Interval, "day"))))
	}
	if v.Replay && v.AudioErr == nil {
		b.WriteString("\n" + Dim("🔊 playing again"))
	}
	return b.String()
}

// FormatSummary is the end-of-session screen.
func FormatSummary(s domain.SessionSummary) string {
	pct := int(s.Accuracy()*100 + 0.5)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", ModeIcon(s.Mode), Bold(s.Mode.Label()+" session complete"))
	fmt.Fprintf(&b, "%s %s\n", Dim("Cards:   "), StyleFg.Render(fmt.Sprint(s.Stats.Total)))
	fmt.Fprintf(&b, "%s %s  %s\n", Dim("Correct: "),
		StyleGreen.Render(fmt.Sprint(s.Stats.Correct)),
		AccuracyStyle(pct).Render(fmt.Sprintf("(%d%%)", pct)))
	fmt.Fprintf(&b, "%s %s\n", Dim("Missed:  "), StyleRed.Render(fmt.Sprint(s.Stats.Incorrect)))
	fmt.Fprintf(&b, "%s %s", Dim("Time:    "), StyleFg.Render(FormatClock(s.Duration)))
	return RenderBox("Well done", b.String())
}
