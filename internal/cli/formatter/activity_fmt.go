package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

// FormatActivity lists recent sessions, newest first.
func FormatActivity(log domain.ActivityLog, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Recent activity") + "\n")
	if len(log) == 0 {
		b.WriteString(Dim("No sessions yet. Run `lexis study` to start.") + "\n")
		return b.String()
	}
	for _, a := range log {
		b.WriteString(formatActivityLine(a, now) + "\n")
	}
	return b.String()
}

func formatActivityLine(a domain.Activity, now time.Time) string {
	d := a.Details
	pct := 0
	if d.Words > 0 {
		pct = d.Correct * 100 / d.Words
	}
	label := d.Mode.Label()
	if d.Category != "" {
		label += Dim(" · " + domain.FormatCategoryName(d.Category))
	}
	return fmt.Sprintf("%s %s  %s  %s  %s",
		ModeIcon(d.Mode),
		Bold(label),
		StyleFg.Render(fmt.Sprintf("%d/%d correct", d.Correct, d.Words)),
		AccuracyStyle(pct).Render(fmt.Sprintf("%d%%", pct)),
		Dim(FormatClock(time.Duration(d.Duration)*time.Second)+" · "+TimeAgo(a.Timestamp.Time(), now)),
	)
}
