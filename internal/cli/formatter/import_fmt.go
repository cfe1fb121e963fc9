package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lexis/internal/app"
)

func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s from %s\n", StyleGreen.Render("✔ Imported"), Plural(res.Added, "new word"), Dim(res.Path))
	if res.Skipped > 0 {
		fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%d already tracked, kept their progress", res.Skipped)))
	}
	if len(res.Duplicates) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("listed twice:"), strings.Join(res.Duplicates, ", "))
	}
	return b.String()
}

func FormatBackups(backups []app.BackupView) string {
	if len(backups) == 0 {
		return Dim("No backups yet.") + "\n"
	}
	rows := make([][]string, 0, len(backups))
	for _, bk := range backups {
		rows = append(rows, []string{
			Dim(bk.ID[:min(8, len(bk.ID))]),
			StylePurple.Render(bk.Reason),
			bk.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d B", bk.Bytes),
		})
	}
	return RenderTableAligned([]string{"ID", "REASON", "TAKEN", "SIZE"}, rows, map[int]bool{3: true})
}
