package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/lexis/internal/domain"
)

// FixedNow is the reference instant fixtures are created at.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

var testWordCounter atomic.Int64

type WordOption func(*domain.WordRecord)

func WithTranslation(tr string) WordOption {
	return func(w *domain.WordRecord) { w.Translation = tr }
}

func WithCategory(c string) WordOption {
	return func(w *domain.WordRecord) { w.Category = c }
}

func WithLevel(l domain.Level) WordOption {
	return func(w *domain.WordRecord) { w.Level = l }
}

func WithCorrect(n int) WordOption {
	return func(w *domain.WordRecord) { w.CorrectCount = n }
}

func WithIncorrect(n int) WordOption {
	return func(w *domain.WordRecord) { w.IncorrectCount = n }
}

func WithInterval(days int) WordOption {
	return func(w *domain.WordRecord) { w.Interval = days }
}

func WithEase(e float64) WordOption {
	return func(w *domain.WordRecord) { w.EaseFactor = e }
}

// WithNextReview sets when the word becomes due.
func WithNextReview(t time.Time) WordOption {
	return func(w *domain.WordRecord) { w.NextReview = domain.MillisOf(t) }
}

func WithLastReviewed(t time.Time) WordOption {
	return func(w *domain.WordRecord) { w.LastReviewed = domain.MillisPtr(t) }
}

// Learned marks a word as seen once and not due until tomorrow.
func Learned() WordOption {
	return func(w *domain.WordRecord) {
		w.Level = domain.LevelLearning
		w.CorrectCount = 1
		w.Interval = 1
		w.NextReview = domain.MillisOf(FixedNow.Add(24 * time.Hour))
		w.LastReviewed = domain.MillisPtr(FixedNow)
	}
}

// NewTestWord builds a fresh record due at FixedNow. An empty word gets a
// unique generated name.
func NewTestWord(word string, opts ...WordOption) *domain.WordRecord {
	if word == "" {
		word = fmt.Sprintf("word-%d", testWordCounter.Add(1))
	}
	w := domain.NewWordRecord(word, word+"-es", "THINGS", "File 1", FixedNow)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTestProgress wraps words into a snapshot.
func NewTestProgress(words ...*domain.WordRecord) *domain.Progress {
	p := domain.NewProgress()
	for _, w := range words {
		p.Words.Add(w)
	}
	return p
}

// NewTestVocabulary builds a one-group dataset; each category maps to its
// words, translations are word+"-es".
func NewTestVocabulary(categories map[string][]string, order ...string) domain.Vocabulary {
	cats := make([]domain.VocabularyCategory, 0, len(order))
	for _, name := range order {
		c := domain.VocabularyCategory{Name: name}
		for _, w := range categories[name] {
			c.Entries = append(c.Entries, domain.VocabularyEntry{Word: w, Translation: w + "-es"})
		}
		cats = append(cats, c)
	}
	return domain.Vocabulary{Groups: []domain.VocabularyGroup{{Name: "File 1", Categories: cats}}}
}
