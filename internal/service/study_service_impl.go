package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/scheduler"
	"github.com/alexanderramin/lexis/internal/session"
	"github.com/alexanderramin/lexis/internal/speech"
)

type studyService struct {
	store         ProgressStore
	speaker       speech.Speaker
	newWordsLimit int
	observer      UseCaseObserver

	// selMu guards selector, whose random source is not safe for
	// concurrent use.
	selMu    sync.Mutex
	selector *scheduler.Selector
}

type studyConfig struct {
	observers []UseCaseObserver
	rng       scheduler.Random
}

// StudyOption configures NewStudyService.
type StudyOption func(*studyConfig)

// WithStudyObservers reports every prepare, grade and completion to obs.
func WithStudyObservers(obs ...UseCaseObserver) StudyOption {
	return func(c *studyConfig) { c.observers = append(c.observers, obs...) }
}

// WithSelectionRandom fixes the source used to shuffle selected cards.
// A seeded source makes card order reproducible.
func WithSelectionRandom(rng scheduler.Random) StudyOption {
	return func(c *studyConfig) { c.rng = rng }
}

// NewStudyService builds sessions over store. A nil speaker disables
// audio; newWordsLimit <= 0 uses scheduler.NewWordsLimit.
func NewStudyService(store ProgressStore, speaker speech.Speaker, newWordsLimit int, opts ...StudyOption) StudyService {
	var cfg studyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if speaker == nil {
		speaker = speech.Unavailable{}
	}
	if newWordsLimit <= 0 {
		newWordsLimit = scheduler.NewWordsLimit
	}
	return &studyService{
		store:         store,
		speaker:       speaker,
		newWordsLimit: newWordsLimit,
		observer:      useCaseObserverOrNoop(cfg.observers),
		selector:      scheduler.NewSelector(cfg.rng),
	}
}

func (s *studyService) Prepare(ctx context.Context, req app.StudyRequest, opts ...session.Option) (runner *session.Runner, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"policy": string(req.Policy),
		"mode":   string(req.Mode),
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "prepare-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	now := s.store.Now()
	if req.Now != nil {
		now = *req.Now
	}

	var cards []domain.WordRecord
	cards, err = s.selectCards(req, now)
	if err != nil {
		return nil, err
	}
	fields["cards"] = len(cards)

	grader := &observedGrader{store: s.store, observer: s.observer}
	runnerOpts := []session.Option{
		session.WithClock(s.store.Now),
		session.WithSpeaker(s.speaker),
		session.WithTranslations(s.store.Translations()),
		session.WithPolicy(req.Policy),
		session.WithCategory(req.Category),
	}
	return session.NewRunner(grader, cards, append(runnerOpts, opts...)...), nil
}

func (s *studyService) selectCards(req app.StudyRequest, now time.Time) ([]domain.WordRecord, error) {
	s.selMu.Lock()
	defer s.selMu.Unlock()
	sel := s.selector
	words := s.store.Words()

	switch req.Policy {
	case domain.PolicyDaily:
		return sel.DailyReview(words, now)
	case domain.PolicyNew:
		limit := s.newWordsLimit
		if req.Limit > 0 {
			limit = req.Limit
		}
		return sel.NewWords(words, limit)
	case domain.PolicyCategory:
		return sel.Category(words, req.Category, now)
	default:
		return nil, fmt.Errorf("unknown policy %q", req.Policy)
	}
}

// observedGrader reports each grading and completion as a use case.
type observedGrader struct {
	store    ProgressStore
	observer UseCaseObserver
}

func (g *observedGrader) Grade(ctx context.Context, word string, difficulty int) (rec *domain.WordRecord, err error) {
	startedAt := time.Now()
	fields := map[string]any{"word": word, "difficulty": difficulty}
	defer func() {
		if rec != nil {
			fields["level"] = rec.Level.String()
			fields["interval_days"] = rec.Interval
		}
		g.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "grade-word",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return g.store.Grade(ctx, word, difficulty)
}

func (g *observedGrader) CompleteSession(ctx context.Context, summary domain.SessionSummary) (err error) {
	startedAt := time.Now()
	defer func() {
		g.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "complete-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"session_id": summary.SessionID,
				"mode":       string(summary.Mode),
				"words":      summary.Stats.Total,
				"correct":    summary.Stats.Correct,
				"duration_s": int(summary.Duration / time.Second),
			},
		})
	}()

	return g.store.CompleteSession(ctx, summary)
}
