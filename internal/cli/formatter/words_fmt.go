package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
)

// FormatWords renders the word table.
func FormatWords(words []app.WordView, now time.Time) string {
	if len(words) == 0 {
		return Dim("No words match.") + "\n"
	}
	headers := []string{"WORD", "TRANSLATION", "CATEGORY", "LEVEL", "✓", "✗", "INTERVAL", "EASE", "NEXT"}
	rows := make([][]string, 0, len(words))
	for _, w := range words {
		rows = append(rows, []string{
			Bold(w.Word),
			StyleFg.Render(w.Translation),
			Dim(w.Category),
			LevelBadge(w.Level),
			StyleGreen.Render(fmt.Sprint(w.Correct)),
			StyleRed.Render(fmt.Sprint(w.Incorrect)),
			fmt.Sprintf("%dd", w.Interval),
			fmt.Sprintf("%.2f", w.EaseFactor),
			NextReviewStyled(w.NextReview, now),
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{4: true, 5: true, 6: true, 7: true}) +
		Dim(Plural(len(words), "word")) + "\n"
}
