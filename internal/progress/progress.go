// Package progress derives read-only learning summaries from a snapshot.
package progress

import (
	"math"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

// CategoryProgress counts the words of one category by mastery.
type CategoryProgress struct {
	Category    string
	DisplayName string
	Icon        string
	Total       int
	Mastered    int
	Learning    int
	NewWords    int
	Due         int
	Percentage  int
}

// Overview is the home-screen summary.
type Overview struct {
	TotalWords    int
	ByLevel       [4]int
	Due           int
	NewCandidates int
	Mastery       int // percent of words mastered
	Accuracy      int // all-time percent correct
	Streak        int
	TotalStudied  int
	TotalTime     int // minutes
	LastStudyDate *time.Time
	Categories    int
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Category computes progress for one category. An unknown or empty
// category yields zero counts and 0%.
func Category(words []domain.WordRecord, category string, now time.Time) CategoryProgress {
	cp := CategoryProgress{
		Category:    category,
		DisplayName: domain.FormatCategoryName(category),
		Icon:        domain.CategoryIcon(category),
	}
	for i := range words {
		w := &words[i]
		if w.Category != category {
			continue
		}
		cp.Total++
		switch w.Level {
		case domain.LevelMastered:
			cp.Mastered++
		case domain.LevelLearning, domain.LevelFamiliar:
			cp.Learning++
		case domain.LevelNew:
			cp.NewWords++
		}
		if w.IsDue(now) {
			cp.Due++
		}
	}
	cp.Percentage = percent(cp.Mastered, cp.Total)
	return cp
}

// CategoryNames lists categories in first-seen order.
func CategoryNames(words []domain.WordRecord) []string {
	seen := map[string]bool{}
	var out []string
	for i := range words {
		c := words[i].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Categories computes progress for every category in first-seen order.
func Categories(snapshot *domain.Progress, now time.Time) []CategoryProgress {
	words := snapshot.Words.Values()
	names := CategoryNames(words)
	out := make([]CategoryProgress, 0, len(names))
	for _, name := range names {
		out = append(out, Category(words, name, now))
	}
	return out
}

// Summarize builds the overview for snapshot at now.
func Summarize(snapshot *domain.Progress, now time.Time) Overview {
	words := snapshot.Words.Values()
	ov := Overview{
		TotalWords:   len(words),
		Accuracy:     snapshot.Stats.AccuracyPercent(),
		Streak:       snapshot.Stats.Streak,
		TotalStudied: snapshot.Stats.TotalStudied,
		TotalTime:    snapshot.Stats.TotalTime,
		Categories:   len(CategoryNames(words)),
	}
	if d := snapshot.Stats.LastStudyDate; d != nil {
		t := d.Time()
		ov.LastStudyDate = &t
	}
	for i := range words {
		w := &words[i]
		if w.Level.Valid() {
			ov.ByLevel[w.Level]++
		}
		if w.IsDue(now) {
			ov.Due++
		}
		if w.IsNew() {
			ov.NewCandidates++
		}
	}
	ov.Mastery = percent(ov.ByLevel[domain.LevelMastered], ov.TotalWords)
	return ov
}

// DayDiff is the number of local-midnight boundaries from a to b.
func DayDiff(a, b time.Time, loc *time.Location) int {
	return domain.CalendarDayDiff(a, b, loc)
}
