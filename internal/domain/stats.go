package domain

import (
	"math"
	"time"
)

// SessionStats counts answers within one study session. It lives only in
// memory and is folded into ProgressStats when the session completes.
type SessionStats struct {
	Correct   int
	Incorrect int
	Total     int
}

// Answered is the number of graded answers so far.
func (s SessionStats) Answered() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns correct/total in [0,1], or 0 for an empty session.
func (s SessionStats) Accuracy() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// ProgressStats is the lifetime aggregate persisted with the word records.
type ProgressStats struct {
	TotalStudied   int          `json:"totalStudied"`
	TotalTime      int          `json:"totalTime"` // minutes
	Streak         int          `json:"streak"`
	LastStudyDate  *EpochMillis `json:"lastStudyDate"`
	CorrectAnswers int          `json:"correctAnswers"`
	TotalAnswers   int          `json:"totalAnswers"`
}

// RecordAnswer keeps the all-time answer counters in lockstep with grading.
func (p *ProgressStats) RecordAnswer(correct bool) {
	if correct {
		p.CorrectAnswers++
	}
	p.TotalAnswers++
}

// AccuracyPercent is round(correct/total*100), 0 before any answer.
func (p ProgressStats) AccuracyPercent() int {
	if p.TotalAnswers <= 0 {
		return 0
	}
	return int(math.Round(float64(p.CorrectAnswers) / float64(p.TotalAnswers) * 100))
}

// CheckStreakValidity zeroes the streak when more than one calendar day has
// passed since the last study day. Reports whether the streak changed.
func (p *ProgressStats) CheckStreakValidity(now time.Time, loc *time.Location) bool {
	if p.LastStudyDate == nil || p.Streak == 0 {
		return false
	}
	if CalendarDayDiff(p.LastStudyDate.Time(), now, loc) > 1 {
		p.Streak = 0
		return true
	}
	return false
}

// RecordStudyDay advances the streak for a completed session at now.
// LastStudyDate always moves to now.
func (p *ProgressStats) RecordStudyDay(now time.Time, loc *time.Location) {
	defer func() { p.LastStudyDate = MillisPtr(now) }()

	if p.LastStudyDate == nil {
		p.Streak = 1
		return
	}
	switch diff := CalendarDayDiff(p.LastStudyDate.Time(), now, loc); {
	case diff <= 0:
		if p.Streak == 0 {
			p.Streak = 1
		}
	case diff == 1:
		p.Streak++
	default:
		p.Streak = 1
	}
}

// FoldSession adds a completed session's totals. Only whole minutes count.
func (p *ProgressStats) FoldSession(s SessionStats, duration time.Duration) {
	p.TotalStudied += s.Total
	p.TotalTime += int(duration / time.Minute)
}
