package domain

import (
	"errors"
	"fmt"
)

// Progress is the whole persisted learner state.
type Progress struct {
	Words      *WordSet      `json:"words"`
	Stats      ProgressStats `json:"stats"`
	Activities ActivityLog   `json:"activities"`
}

func NewProgress() *Progress {
	return &Progress{Words: NewWordSet(), Activities: ActivityLog{}}
}

// Validate checks every record and the aggregate counters.
func (p *Progress) Validate() error {
	if p.Words == nil {
		return errors.New("progress has no words")
	}
	var errs []error
	for _, key := range p.Words.Keys() {
		rec, _ := p.Words.Get(key)
		if rec.Word != key {
			errs = append(errs, fmt.Errorf("word %q stored under key %q", rec.Word, key))
		}
		if err := rec.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	s := p.Stats
	if s.TotalStudied < 0 || s.TotalTime < 0 || s.Streak < 0 {
		errs = append(errs, errors.New("stats counters must be non-negative"))
	}
	if s.CorrectAnswers < 0 || s.CorrectAnswers > s.TotalAnswers {
		errs = append(errs, fmt.Errorf("correct answers %d out of range for %d total", s.CorrectAnswers, s.TotalAnswers))
	}
	if len(p.Activities) > MaxActivities {
		errs = append(errs, fmt.Errorf("activity log holds %d entries, max %d", len(p.Activities), MaxActivities))
	}
	return errors.Join(errs...)
}

// Normalize repairs a loaded snapshot in place and reports whether anything
// changed.
func (p *Progress) Normalize() bool {
	changed := false
	if p.Words == nil {
		p.Words, changed = NewWordSet(), true
	}
	if p.Activities == nil {
		p.Activities = ActivityLog{}
	}
	for _, key := range p.Words.Keys() {
		rec, _ := p.Words.Get(key)
		if rec.Word != key {
			rec.Word, changed = key, true
		}
		if rec.Normalize() {
			changed = true
		}
	}
	s := &p.Stats
	for _, n := range []*int{&s.TotalStudied, &s.TotalTime, &s.Streak, &s.CorrectAnswers, &s.TotalAnswers} {
		if *n < 0 {
			*n, changed = 0, true
		}
	}
	if s.CorrectAnswers > s.TotalAnswers {
		s.TotalAnswers, changed = s.CorrectAnswers, true
	}
	if len(p.Activities) > MaxActivities {
		p.Activities, changed = p.Activities[:MaxActivities], true
	}
	return changed
}

// Clone returns a deep copy safe to hand to readers.
func (p *Progress) Clone() *Progress {
	c := &Progress{
		Words:      p.Words.Clone(),
		Stats:      p.Stats,
		Activities: append(ActivityLog{}, p.Activities...),
	}
	if p.Stats.LastStudyDate != nil {
		d := *p.Stats.LastStudyDate
		c.Stats.LastStudyDate = &d
	}
	return c
}
