package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/progress"
	"github.com/alexanderramin/lexis/internal/scheduler"
)

type statusService struct {
	store    ProgressStore
	observer UseCaseObserver
}

func NewStatusService(store ProgressStore, observers ...UseCaseObserver) StatusService {
	return &statusService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *statusService) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return s.store.Now()
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "status",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	now := s.now(req.Now)
	snap := s.store.Snapshot()
	overview := progress.Summarize(snap, now)

	limit := req.ActivityLimit
	if limit <= 0 {
		limit = domain.MaxActivities
	}

	return &app.StatusResponse{
		GeneratedAt: now,
		Overview:    overview,
		Categories:  progress.Categories(snap, now),
		Activities:  snap.Activities.Recent(limit),
		Warnings:    s.warnings(overview, now),
	}, nil
}

func (s *statusService) warnings(ov progress.Overview, now time.Time) []string {
	var out []string
	if ov.Streak > 0 && ov.LastStudyDate != nil &&
		progress.DayDiff(*ov.LastStudyDate, now, s.store.Location()) == 1 {
		out = append(out, fmt.Sprintf("Study today to keep your %d-day streak.", ov.Streak))
	}
	if ov.Due == 0 && ov.NewCandidates == 0 && ov.TotalWords > 0 {
		out = append(out, "Nothing due and no new words left. Import more words to keep going.")
	}
	return out
}

func (s *statusService) ListWords(_ context.Context, req app.WordsRequest) ([]app.WordView, error) {
	now := s.now(req.Now)
	words := s.store.Words()
	if req.Category != "" {
		words = scheduler.WordsInCategory(words, req.Category)
	}

	views := make([]app.WordView, 0, len(words))
	for _, w := range words {
		due := w.IsDue(now)
		if req.DueOnly && !due {
			continue
		}
		views = append(views, app.WordView{
			Word:        w.Word,
			Translation: w.Translation,
			Category:    w.Category,
			Level:       w.Level,
			Interval:    w.Interval,
			EaseFactor:  w.EaseFactor,
			NextReview:  w.NextReview.Time(),
			Due:         due,
			Correct:     w.CorrectCount,
			Incorrect:   w.IncorrectCount,
		})
	}
	return views, nil
}

// DueCount re-reads stored progress first so long-running callers see
// sessions finished by other processes.
func (s *statusService) DueCount(ctx context.Context) (int, error) {
	if err := s.store.Reload(ctx); err != nil {
		return 0, fmt.Errorf("reloading progress: %w", err)
	}
	return len(scheduler.DueWords(s.store.Words(), s.store.Now())), nil
}
