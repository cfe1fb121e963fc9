package session

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/scheduler"
)

// Prompt is what the presentation layer shows for one card.
type Prompt struct {
	Question string
	// Answer is revealed after judging (flashcard back, correct word).
	Answer   string
	Category string
	// Options holds the quiz choices, already shuffled.
	Options []string
	// Speak is the text played aloud, empty when the mode has no audio.
	Speak string
}

// Response is the user's answer. Which field matters depends on the mode.
type Response struct {
	Difficulty int
	Choice     string
	Text       string
}

// Verdict is the judged answer.
type Verdict struct {
	Correct    bool
	Difficulty int
	Expected   string
	Given      string
	Similarity float64

	// Record is the graded record, nil when the word is unknown to the store.
	Record *domain.WordRecord
	// Replay is set when the audio was played again after a miss.
	Replay   bool
	AudioErr error
}

// Mode is a presentation strategy: how a card is asked and how an answer
// is judged.
type Mode interface {
	Kind() domain.StudyMode
	Prompt(rec domain.WordRecord) Prompt
	Judge(rec domain.WordRecord, p Prompt, r Response) Verdict
}

// NewMode returns the strategy for kind. pool feeds quiz distractors.
func NewMode(kind domain.StudyMode, rng scheduler.Random, pool []string) (Mode, error) {
	switch kind {
	case domain.ModeFlashcard:
		return flashcardMode{}, nil
	case domain.ModeQuiz:
		return &quizMode{rng: rng, pool: pool}, nil
	case domain.ModeTyping:
		return typingMode{}, nil
	case domain.ModeListening:
		return listeningMode{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, kind)
	}
}

func autoVerdict(correct bool, expected, given string) Verdict {
	d := scheduler.DifficultyIncorrect
	if correct {
		d = scheduler.DifficultyCorrect
	}
	return Verdict{Correct: correct, Difficulty: d, Expected: expected, Given: given}
}

// normalize trims and case-folds a typed answer.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

type flashcardMode struct{}

func (flashcardMode) Kind() domain.StudyMode { return domain.ModeFlashcard }

func (flashcardMode) Prompt(rec domain.WordRecord) Prompt {
	return Prompt{
		Question: rec.Word,
		Answer:   rec.Translation,
		Category: domain.FormatCategoryName(rec.Category),
	}
}

// Judge takes the self-assessed difficulty as is.
func (flashcardMode) Judge(rec domain.WordRecord, _ Prompt, r Response) Verdict {
	d := scheduler.ClampDifficulty(r.Difficulty)
	return Verdict{
		Correct:    d >= scheduler.PassingDifficulty,
		Difficulty: d,
		Expected:   rec.Translation,
	}
}

const quizDistractors = 3

type quizMode struct {
	rng  scheduler.Random
	pool []string
}

func (*quizMode) Kind() domain.StudyMode { return domain.ModeQuiz }

func (q *quizMode) Prompt(rec domain.WordRecord) Prompt {
	options := append([]string{rec.Translation}, q.distractors(rec.Translation)...)
	scheduler.Shuffle(q.rng, options)
	return Prompt{
		Question: rec.Word,
		Answer:   rec.Translation,
		Category: domain.FormatCategoryName(rec.Category),
		Options:  options,
	}
}

// distractors draws up to three distinct wrong translations uniformly.
func (q *quizMode) distractors(correct string) []string {
	seen := map[string]bool{correct: true}
	var candidates []string
	for _, t := range q.pool {
		if seen[t] {
			continue
		}
		seen[t] = true
		candidates = append(candidates, t)
	}
	scheduler.Shuffle(q.rng, candidates)
	if len(candidates) > quizDistractors {
		candidates = candidates[:quizDistractors]
	}
	return candidates
}

func (*quizMode) Judge(rec domain.WordRecord, _ Prompt, r Response) Verdict {
	return autoVerdict(r.Choice == rec.Translation, rec.Translation, r.Choice)
}

type typingMode struct{}

func (typingMode) Kind() domain.StudyMode { return domain.ModeTyping }

func (typingMode) Prompt(rec domain.WordRecord) Prompt {
	return Prompt{
		Question: rec.Translation,
		Answer:   rec.Word,
		Category: domain.FormatCategoryName(rec.Category),
	}
}

func (typingMode) Judge(rec domain.WordRecord, _ Prompt, r Response) Verdict {
	return autoVerdict(normalize(r.Text) == normalize(rec.Word), rec.Word, r.Text)
}

// ListeningThreshold is the similarity above which a misspelt answer still
// counts as heard correctly.
const ListeningThreshold = 0.85

type listeningMode struct{}

func (listeningMode) Kind() domain.StudyMode { return domain.ModeListening }

func (listeningMode) Prompt(rec domain.WordRecord) Prompt {
	return Prompt{
		Answer:   rec.Word,
		Category: domain.FormatCategoryName(rec.Category),
		Speak:    rec.Word,
	}
}

func (listeningMode) Judge(rec domain.WordRecord, _ Prompt, r Response) Verdict {
	given, want := normalize(r.Text), normalize(rec.Word)
	sim := Similarity(given, want)
	v := autoVerdict(given == want || sim > ListeningThreshold, rec.Word, r.Text)
	v.Similarity = sim
	return v
}
