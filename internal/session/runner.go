// Package session drives one study session over a fixed list of cards.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/scheduler"
	"github.com/alexanderramin/lexis/internal/speech"
)

// Grader applies answers to the persistent word store.
type Grader interface {
	// Grade records one answer. An unknown word yields (nil, nil).
	Grade(ctx context.Context, word string, difficulty int) (*domain.WordRecord, error)
	CompleteSession(ctx context.Context, summary domain.SessionSummary) error
}

type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Card is the card under the cursor together with its prompt.
type Card struct {
	Index    int
	Total    int
	Record   domain.WordRecord
	Prompt   Prompt
	AudioErr error
}

type Option func(*Runner)

func WithRandom(rng scheduler.Random) Option {
	return func(r *Runner) { r.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithSpeaker(s speech.Speaker) Option {
	return func(r *Runner) { r.speaker = s }
}

// WithSpeechDone is called when an utterance finishes playing.
func WithSpeechDone(fn func()) Option {
	return func(r *Runner) { r.speechDone = fn }
}

// WithTickFunc receives the elapsed time once per second while a session
// is in progress. fn runs on the timer goroutine.
func WithTickFunc(fn func(elapsed time.Duration)) Option {
	return func(r *Runner) { r.onTick = fn }
}

func WithPolicy(p domain.SelectionPolicy) Option {
	return func(r *Runner) { r.policy = p }
}

func WithCategory(category string) Option {
	return func(r *Runner) { r.category = category }
}

// WithTranslations sets the quiz distractor pool. Defaults to the
// translations of the session's own cards.
func WithTranslations(pool []string) Option {
	return func(r *Runner) { r.pool = pool }
}

// Runner is the state machine NotStarted -> InProgress -> Complete.
// It is not safe for concurrent use; only the timer runs on its own
// goroutine.
type Runner struct {
	grader     Grader
	cards      []domain.WordRecord
	rng        scheduler.Random
	now        func() time.Time
	speaker    speech.Speaker
	speechDone func()
	onTick     func(time.Duration)
	tickEvery  time.Duration
	policy     domain.SelectionPolicy
	category   string
	pool       []string

	state     State
	mode      Mode
	sessionID string
	index     int
	card      Card
	answered  bool
	stats     domain.SessionStats
	startedAt time.Time
	endedAt   time.Time
	timer     *Timer
	summary   domain.SessionSummary
}

// NewRunner takes ownership of cards; the slice is not re-read from the
// store after grading.
func NewRunner(grader Grader, cards []domain.WordRecord, opts ...Option) *Runner {
	r := &Runner{
		grader:    grader,
		cards:     cards,
		now:       time.Now,
		speaker:   speech.Unavailable{},
		tickEvery: time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.pool == nil {
		for _, c := range cards {
			r.pool = append(r.pool, c.Translation)
		}
	}
	return r
}

// Start begins (or restarts after completion) a session in the given mode.
func (r *Runner) Start(ctx context.Context, kind domain.StudyMode) error {
	if r.state == StateInProgress {
		return ErrInProgress
	}
	if len(r.cards) == 0 {
		return ErrNoCards
	}
	mode, err := NewMode(kind, r.rng, r.pool)
	if err != nil {
		return err
	}

	r.mode = mode
	r.sessionID = uuid.NewString()
	r.index = 0
	r.stats = domain.SessionStats{Total: len(r.cards)}
	r.startedAt = r.now()
	r.endedAt = time.Time{}
	r.summary = domain.SessionSummary{}
	r.state = StateInProgress
	r.timer = StartTimer(r.startedAt, r.tickEvery, r.now, r.onTick)
	r.enterCard()
	return nil
}

func (r *Runner) enterCard() {
	rec := r.cards[r.index]
	r.answered = false
	r.card = Card{
		Index:  r.index,
		Total:  len(r.cards),
		Record: rec,
		Prompt: r.mode.Prompt(rec),
	}
	if r.card.Prompt.Speak != "" {
		r.card.AudioErr = r.speak(r.card.Prompt.Speak)
	}
}

func (r *Runner) speak(text string) error {
	if r.speaker == nil || !r.speaker.Available() {
		return speech.ErrUnsupported
	}
	return r.speaker.Speak(text, r.speechDone)
}

// Current returns the card under the cursor.
func (r *Runner) Current() (Card, error) {
	if r.state != StateInProgress {
		return Card{}, ErrNotInProgress
	}
	return r.card, nil
}

// Replay plays the current card's audio again.
func (r *Runner) Replay() error {
	if r.state != StateInProgress {
		return ErrNotInProgress
	}
	if r.card.Prompt.Speak == "" {
		return nil
	}
	return r.speak(r.card.Prompt.Speak)
}

// Answer judges and grades the current card. Each card is graded exactly
// once; a failed grade leaves the card unanswered so it can be retried.
func (r *Runner) Answer(ctx context.Context, resp Response) (Verdict, error) {
	if r.state != StateInProgress {
		return Verdict{}, ErrNotInProgress
	}
	if r.answered {
		return Verdict{}, ErrAlreadyAnswered
	}

	v := r.mode.Judge(r.card.Record, r.card.Prompt, resp)
	rec, err := r.grader.Grade(ctx, r.card.Record.Word, v.Difficulty)
	if err != nil {
		return Verdict{}, fmt.Errorf("grading %q: %w", r.card.Record.Word, err)
	}
	v.Record = rec
	r.answered = true

	if v.Correct {
		r.stats.Correct++
	} else {
		r.stats.Incorrect++
		if r.card.Prompt.Speak != "" {
			v.Replay = true
			v.AudioErr = r.speak(r.card.Prompt.Speak)
		}
	}
	return v, nil
}

// Next advances past an answered card. Advancing past the last card
// completes the session.
func (r *Runner) Next(ctx context.Context) error {
	if r.state != StateInProgress {
		return ErrNotInProgress
	}
	if !r.answered {
		return ErrNotAnswered
	}
	r.index++
	if r.index < len(r.cards) {
		r.enterCard()
		return nil
	}
	return r.complete(ctx)
}

// complete always leaves the runner in StateComplete; a store failure is
// returned but does not revive the session.
func (r *Runner) complete(ctx context.Context) error {
	r.timer.Stop()
	r.timer = nil
	r.endedAt = r.now()
	r.state = StateComplete
	r.card = Card{}
	r.summary = domain.SessionSummary{
		SessionID: r.sessionID,
		Mode:      r.mode.Kind(),
		Policy:    r.policy,
		Category:  r.category,
		Stats:     r.stats,
		StartedAt: r.startedAt,
		EndedAt:   r.endedAt,
		Duration:  r.endedAt.Sub(r.startedAt),
	}
	if err := r.grader.CompleteSession(ctx, r.summary); err != nil {
		return fmt.Errorf("completing session: %w", err)
	}
	return nil
}

// Abandon stops the session without recording it. Answers already graded
// stay graded.
func (r *Runner) Abandon() {
	if r.state != StateInProgress {
		return
	}
	r.timer.Stop()
	r.timer = nil
	r.state = StateNotStarted
	r.index = 0
	r.answered = false
	r.card = Card{}
	r.stats = domain.SessionStats{}
	r.startedAt = time.Time{}
}

// Elapsed is the wall-clock time since Start, frozen at completion.
func (r *Runner) Elapsed() time.Duration {
	switch r.state {
	case StateInProgress:
		return r.now().Sub(r.startedAt)
	case StateComplete:
		return r.endedAt.Sub(r.startedAt)
	default:
		return 0
	}
}

func (r *Runner) Stats() domain.SessionStats { return r.stats }
func (r *Runner) State() State               { return r.state }
func (r *Runner) Index() int                 { return r.index }
func (r *Runner) Len() int                   { return len(r.cards) }
func (r *Runner) Answered() bool             { return r.answered }

func (r *Runner) Policy() domain.SelectionPolicy {
	return r.policy
}

func (r *Runner) Category() string {
	return r.category
}

// Mode returns the active study mode, empty before the first Start.
func (r *Runner) Mode() domain.StudyMode {
	if r.mode == nil {
		return ""
	}
	return r.mode.Kind()
}

// Summary is the record of the last completed session.
func (r *Runner) Summary() (domain.SessionSummary, bool) {
	return r.summary, r.state == StateComplete
}
