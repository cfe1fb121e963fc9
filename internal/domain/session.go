package domain

import "time"

// SessionSummary describes a finished study session. It is what the runner
// hands to the store at completion.
type SessionSummary struct {
	SessionID string
	Mode      StudyMode
	Policy    SelectionPolicy
	Category  string
	Stats     SessionStats
	StartedAt time.Time
	EndedAt   time.Time
	Duration  time.Duration
}

// Accuracy is correct/total in [0,1].
func (s SessionSummary) Accuracy() float64 {
	return s.Stats.Accuracy()
}

// Activity converts the summary into its activity log entry.
func (s SessionSummary) Activity() Activity {
	return Activity{
		Type: ActivityStudySession,
		Details: ActivityDetails{
			Mode:      s.Mode,
			Words:     s.Stats.Total,
			Correct:   s.Stats.Correct,
			Duration:  int(s.Duration / time.Second),
			SessionID: s.SessionID,
			Policy:    s.Policy,
			Category:  s.Category,
		},
		Timestamp: MillisOf(s.EndedAt),
	}
}
