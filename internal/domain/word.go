package domain

import (
	"fmt"
	"time"
)

const (
	// DefaultEaseFactor is the ease a word starts with.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor never drops below.
	MinEaseFactor = 1.3
)

// WordRecord is the learning state of one vocabulary word, keyed by Word.
// JSON names match the persisted progress blob.
type WordRecord struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Category    string `json:"category"`
	SourceFile  string `json:"file"`

	Level          Level `json:"level"`
	CorrectCount   int   `json:"correctCount"`
	IncorrectCount int   `json:"incorrectCount"`

	LastReviewed *EpochMillis `json:"lastReviewed"`
	NextReview   EpochMillis  `json:"nextReview"`
	Interval     int          `json:"interval"`
	EaseFactor   float64      `json:"easeFactor"`
}

// NewWordRecord creates a never-reviewed record that is due at now.
func NewWordRecord(word, translation, category, sourceFile string, now time.Time) *WordRecord {
	return &WordRecord{
		Word:        word,
		Translation: translation,
		Category:    category,
		SourceFile:  sourceFile,
		Level:       LevelNew,
		NextReview:  MillisOf(now),
		EaseFactor:  DefaultEaseFactor,
	}
}

// IsDue reports whether the record's next review is at or before now.
func (w *WordRecord) IsDue(now time.Time) bool {
	return w.NextReview <= MillisOf(now)
}

// IsNew reports whether the word has never been answered correctly.
func (w *WordRecord) IsNew() bool {
	return w.Level == LevelNew && w.CorrectCount == 0
}

// Reviewed reports whether the word has been graded at least once.
func (w *WordRecord) Reviewed() bool {
	return w.LastReviewed != nil
}

// Validate checks the record invariants.
func (w *WordRecord) Validate() error {
	if w.Word == "" {
		return fmt.Errorf("word is required")
	}
	if !w.Level.Valid() {
		return fmt.Errorf("word %q: invalid level %d", w.Word, w.Level)
	}
	if w.CorrectCount < 0 || w.IncorrectCount < 0 {
		return fmt.Errorf("word %q: answer counters must be non-negative", w.Word)
	}
	if w.Interval < 0 {
		return fmt.Errorf("word %q: interval must be non-negative", w.Word)
	}
	if w.EaseFactor < MinEaseFactor {
		return fmt.Errorf("word %q: ease factor %.2f below %.1f", w.Word, w.EaseFactor, MinEaseFactor)
	}
	return nil
}

// Normalize repairs out-of-range fields in place and reports whether
// anything changed.
func (w *WordRecord) Normalize() bool {
	changed := false
	if w.Level < LevelNew {
		w.Level, changed = LevelNew, true
	}
	if w.Level > LevelMastered {
		w.Level, changed = LevelMastered, true
	}
	if w.CorrectCount < 0 {
		w.CorrectCount, changed = 0, true
	}
	if w.IncorrectCount < 0 {
		w.IncorrectCount, changed = 0, true
	}
	if w.Interval < 0 {
		w.Interval, changed = 0, true
	}
	if w.EaseFactor < MinEaseFactor {
		w.EaseFactor, changed = MinEaseFactor, true
	}
	return changed
}

// Clone returns a deep copy.
func (w *WordRecord) Clone() *WordRecord {
	c := *w
	if w.LastReviewed != nil {
		lr := *w.LastReviewed
		c.LastReviewed = &lr
	}
	return &c
}
