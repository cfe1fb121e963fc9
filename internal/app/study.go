package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

// StudyRequest selects the cards and mode of one session.
type StudyRequest struct {
	Now      *time.Time
	Policy   domain.SelectionPolicy
	Category string
	Mode     domain.StudyMode
	// Limit caps new-word sessions; zero uses the configured default.
	Limit int
}

func NewStudyRequest() StudyRequest {
	return StudyRequest{
		Policy: domain.PolicyDaily,
		Mode:   domain.ModeFlashcard,
	}
}

// Validate checks the enums and that category sessions name a category.
func (r StudyRequest) Validate() error {
	if !domain.ValidSelectionPolicies[string(r.Policy)] {
		return fmt.Errorf("unknown policy %q", r.Policy)
	}
	if !domain.ValidStudyModes[string(r.Mode)] {
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	if r.Policy == domain.PolicyCategory && r.Category == "" {
		return fmt.Errorf("category policy requires a category")
	}
	if r.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}
