package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/progress"
)

const statusBarWidth = 20

// FormatStatus renders the overview dashboard.
func FormatStatus(resp *app.StatusResponse) string {
	ov := resp.Overview
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold("Mastery"), RenderProgress(ov.Mastery, statusBarWidth))
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Words:"), StyleFg.Render(fmt.Sprintf("%d in %d categories", ov.TotalWords, ov.Categories)))

	levels := []domain.Level{domain.LevelNew, domain.LevelLearning, domain.LevelFamiliar, domain.LevelMastered}
	parts := make([]string, 0, len(levels))
	for _, l := range levels {
		parts = append(parts, fmt.Sprintf("%s %d", LevelBadge(l), ov.ByLevel[l]))
	}
	b.WriteString(strings.Join(parts, Dim("  ·  ")) + "\n\n")

	due := StyleGreen.Render("0 due")
	if ov.Due > 0 {
		due = StyleYellow.Render(fmt.Sprintf("%d due", ov.Due))
	}
	fmt.Fprintf(&b, "%s %s  %s %s\n", Dim("Review:"), due, Dim("New available:"), StyleBlue.Render(fmt.Sprint(ov.NewCandidates)))

	accuracy := Dim("--")
	if ov.TotalStudied > 0 || ov.Accuracy > 0 {
		accuracy = AccuracyStyle(ov.Accuracy).Render(fmt.Sprintf("%d%%", ov.Accuracy))
	}
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		Dim("Accuracy:"), accuracy,
		Dim("Streak:"), formatStreak(ov.Streak),
		Dim("Time:"), StyleFg.Render(FormatMinutes(ov.TotalTime)))

	last := Dim("never")
	if ov.LastStudyDate != nil {
		last = StyleFg.Render(TimeAgo(*ov.LastStudyDate, resp.GeneratedAt))
	}
	fmt.Fprintf(&b, "%s %s  %s %s\n", Dim("Studied:"), StyleFg.Render(Plural(ov.TotalStudied, "card")), Dim("Last session:"), last)

	out := RenderBox("lexis", b.String())

	if len(resp.Categories) > 0 {
		out += "\n\n" + FormatCategories(resp.Categories)
	}
	if len(resp.Activities) > 0 {
		out += "\n" + FormatActivity(resp.Activities, resp.GeneratedAt)
	}
	for _, w := range resp.Warnings {
		out += "\n" + StyleYellow.Render("! "+w)
	}
	return out + "\n"
}

func formatStreak(days int) string {
	if days == 0 {
		return Dim("0 days")
	}
	return StyleHeader.Render("🔥 " + Plural(days, "day"))
}

// FormatCategories renders one row per category with a mastery bar.
func FormatCategories(cats []progress.CategoryProgress) string {
	headers := []string{"", "CATEGORY", "WORDS", "MASTERED", "LEARNING", "NEW", "DUE", "PROGRESS"}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		due := Dim("0")
		if c.Due > 0 {
			due = StyleYellow.Render(fmt.Sprint(c.Due))
		}
		rows = append(rows, []string{
			c.Icon,
			Bold(c.DisplayName),
			fmt.Sprint(c.Total),
			StyleGreen.Render(fmt.Sprint(c.Mastered)),
			StyleYellow.Render(fmt.Sprint(c.Learning)),
			Dim(fmt.Sprint(c.NewWords)),
			due,
			RenderProgress(c.Percentage, 10),
		})
	}
	return Header("Categories") + "\n" + RenderTableAligned(headers, rows, map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true})
}
