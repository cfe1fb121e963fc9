package domain

// MaxActivities bounds the persisted activity log.
const MaxActivities = 50

// ActivityDetails is the payload of a study_session entry. Duration is in
// seconds.
type ActivityDetails struct {
	Mode      StudyMode       `json:"mode"`
	Words     int             `json:"words"`
	Correct   int             `json:"correct"`
	Duration  int             `json:"duration"`
	SessionID string          `json:"sessionId,omitempty"`
	Policy    SelectionPolicy `json:"policy,omitempty"`
	Category  string          `json:"category,omitempty"`
}

type Activity struct {
	Type      ActivityType    `json:"type"`
	Details   ActivityDetails `json:"details"`
	Timestamp EpochMillis     `json:"timestamp"`
}

// ActivityLog is ordered newest first.
type ActivityLog []Activity

// Prepend adds a to the front, evicting the oldest entries beyond
// MaxActivities.
func (l ActivityLog) Prepend(a Activity) ActivityLog {
	out := make(ActivityLog, 0, min(len(l)+1, MaxActivities))
	out = append(out, a)
	for _, e := range l {
		if len(out) == MaxActivities {
			break
		}
		out = append(out, e)
	}
	return out
}

// Recent returns up to n newest entries.
func (l ActivityLog) Recent(n int) ActivityLog {
	if n <= 0 || n >= len(l) {
		return append(ActivityLog(nil), l...)
	}
	return append(ActivityLog(nil), l[:n]...)
}
