package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityLogPrepend_CapsAtMax(t *testing.T) {
	var log ActivityLog
	for i := 0; i < MaxActivities+5; i++ {
		log = log.Prepend(Activity{Type: ActivityStudySession, Details: ActivityDetails{Words: i}})
	}

	assert.Len(t, log, MaxActivities)
	assert.Equal(t, MaxActivities+4, log[0].Details.Words, "newest first")
	assert.Equal(t, 5, log[len(log)-1].Details.Words, "oldest entries evicted")
}

func TestActivityLogRecent(t *testing.T) {
	log := ActivityLog{{Timestamp: 3}, {Timestamp: 2}, {Timestamp: 1}}
	assert.Len(t, log.Recent(2), 2)
	assert.Len(t, log.Recent(10), 3)
	assert.Len(t, log.Recent(0), 3)
}

func TestSessionSummaryActivity(t *testing.T) {
	end := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	s := SessionSummary{
		SessionID: "abc",
		Mode:      ModeTyping,
		Policy:    PolicyNew,
		Stats:     SessionStats{Correct: 2, Incorrect: 1, Total: 3},
		StartedAt: end.Add(-95 * time.Second),
		EndedAt:   end,
		Duration:  95 * time.Second,
	}

	a := s.Activity()
	assert.Equal(t, ActivityStudySession, a.Type)
	assert.Equal(t, ModeTyping, a.Details.Mode)
	assert.Equal(t, 3, a.Details.Words)
	assert.Equal(t, 2, a.Details.Correct)
	assert.Equal(t, 95, a.Details.Duration)
	assert.Equal(t, MillisOf(end), a.Timestamp)
}
