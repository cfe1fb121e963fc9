package scheduler

import (
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

const (
	DailyReviewLimit = 20
	NewWordsLimit    = 15
	CategoryNewLimit = 5
	CategoryLimit    = 20
)

// Selector picks the cards of a study session. Inputs are records in
// seeding order; every result is an independent shuffled copy that the
// caller owns.
type Selector struct {
	rng Random
}

// NewSelector returns a Selector. A nil rng uses an unseeded PCG source.
func NewSelector(rng Random) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng}
}

// DailyReview returns up to DailyReviewLimit due words.
func (s *Selector) DailyReview(words []domain.WordRecord, now time.Time) ([]domain.WordRecord, error) {
	due := DueWords(words, now)
	if len(due) == 0 {
		return nil, ErrNothingDue
	}
	return s.finish(due, DailyReviewLimit), nil
}

// NewWords returns up to limit never-learned words. limit <= 0 means
// NewWordsLimit.
func (s *Selector) NewWords(words []domain.WordRecord, limit int) ([]domain.WordRecord, error) {
	if limit <= 0 {
		limit = NewWordsLimit
	}
	fresh := NewWordCandidates(words, limit)
	if len(fresh) == 0 {
		return nil, ErrNothingNew
	}
	return s.finish(fresh, limit), nil
}

// Category returns the due words of a category followed by at most
// CategoryNewLimit new ones, without repeats, capped at CategoryLimit.
func (s *Selector) Category(words []domain.WordRecord, category string, now time.Time) ([]domain.WordRecord, error) {
	inCat := WordsInCategory(words, category)
	picked := append(DueWords(inCat, now), NewWordCandidates(inCat, CategoryNewLimit)...)
	picked = dedupe(picked)
	if len(picked) == 0 {
		return nil, ErrNothingAvailable
	}
	return s.finish(picked, CategoryLimit), nil
}

// finish caps before shuffling so the cap keeps the leading words.
func (s *Selector) finish(words []domain.WordRecord, limit int) []domain.WordRecord {
	if len(words) > limit {
		words = words[:limit]
	}
	return Shuffled(s.rng, words)
}

// DueWords returns copies of the records due at now, in input order.
func DueWords(words []domain.WordRecord, now time.Time) []domain.WordRecord {
	var out []domain.WordRecord
	for i := range words {
		if words[i].IsDue(now) {
			out = append(out, *words[i].Clone())
		}
	}
	return out
}

// NewWordCandidates returns copies of the first limit new records.
// limit <= 0 means no cap.
func NewWordCandidates(words []domain.WordRecord, limit int) []domain.WordRecord {
	var out []domain.WordRecord
	for i := range words {
		if limit > 0 && len(out) == limit {
			break
		}
		if words[i].IsNew() {
			out = append(out, *words[i].Clone())
		}
	}
	return out
}

// WordsInCategory returns copies of the records tagged with category.
func WordsInCategory(words []domain.WordRecord, category string) []domain.WordRecord {
	var out []domain.WordRecord
	for i := range words {
		if words[i].Category == category {
			out = append(out, *words[i].Clone())
		}
	}
	return out
}

func dedupe(words []domain.WordRecord) []domain.WordRecord {
	seen := make(map[string]bool, len(words))
	out := words[:0]
	for _, w := range words {
		if seen[w.Word] {
			continue
		}
		seen[w.Word] = true
		out = append(out, w)
	}
	return out
}
