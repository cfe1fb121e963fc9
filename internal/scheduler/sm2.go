package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

const (
	DefaultEase = domain.DefaultEaseFactor
	MinEase     = domain.MinEaseFactor

	// Difficulties are on a 1..4 scale; 3 and above counts as correct.
	MinDifficulty     = 1
	MaxDifficulty     = 4
	PassingDifficulty = 3

	// DifficultyCorrect and DifficultyIncorrect are what the auto-judged
	// modes (quiz, typing, listening) report.
	DifficultyCorrect   = 4
	DifficultyIncorrect = 1

	incorrectEasePenalty = 0.2
)

// levelThresholds[i] is the cumulative correct count needed to move from
// level i to level i+1.
var levelThresholds = [...]int{1, 3, 6}

// Outcome reports how one answer was classified.
type Outcome struct {
	Correct   bool
	PrevLevel domain.Level
	Level     domain.Level
}

// LeveledUp reports whether the answer promoted the word.
func (o Outcome) LeveledUp() bool {
	return o.Level > o.PrevLevel
}

// ClampDifficulty forces d into 1..4.
func ClampDifficulty(d int) int {
	return min(max(d, MinDifficulty), MaxDifficulty)
}

// IsDue reports whether rec should be reviewed at now.
func IsDue(rec *domain.WordRecord, now time.Time) bool {
	return rec.IsDue(now)
}

// Grade applies one answer of the given difficulty to rec in place.
//
// Correct answers walk the interval ladder 1, 6, round(interval*ease) using
// the ease in effect before this answer, then adjust ease by the SM-2 delta.
// Incorrect answers reset the interval and cost 0.2 ease. Level never
// decreases. The next review is now plus interval whole days.
func Grade(rec *domain.WordRecord, difficulty int, now time.Time) Outcome {
	d := ClampDifficulty(difficulty)
	out := Outcome{Correct: d >= PassingDifficulty, PrevLevel: rec.Level}

	rec.LastReviewed = domain.MillisPtr(now)

	if out.Correct {
		rec.CorrectCount++
		rec.Interval = nextInterval(rec.Interval, rec.EaseFactor)

		q := float64(MaxDifficulty - d)
		rec.EaseFactor = math.Max(MinEase, rec.EaseFactor+(0.1-q*(0.08+q*0.02)))

		for lvl, need := range levelThresholds {
			if rec.Level == domain.Level(lvl) && rec.CorrectCount >= need {
				rec.Level = domain.Level(lvl + 1)
			}
		}
	} else {
		rec.IncorrectCount++
		rec.Interval = 0
		rec.EaseFactor = math.Max(MinEase, rec.EaseFactor-incorrectEasePenalty)
	}

	rec.NextReview = domain.MillisOf(now.Add(time.Duration(rec.Interval) * 24 * time.Hour))
	out.Level = rec.Level
	return out
}

func nextInterval(interval int, ease float64) int {
	switch interval {
	case 0:
		return 1
	case 1:
		return 6
	default:
		return int(math.Round(float64(interval) * ease))
	}
}
