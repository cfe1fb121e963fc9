// Package reminder periodically checks for due words and notifies the
// learner during waking hours.
package reminder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// DueCounter reports how many words are due right now.
type DueCounter interface {
	DueCount(ctx context.Context) (int, error)
}

// Notifier delivers a reminder.
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// Notice is one reminder.
type Notice struct {
	Due int
	At  time.Time
}

// Config controls how often checks run and during which hours reminders
// are sent. Hours are inclusive and read in Location.
type Config struct {
	Every     time.Duration
	StartHour int
	EndHour   int
	Location  *time.Location
}

type Option func(*Scheduler)

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scheduler runs due-word checks on a gocron schedule.
type Scheduler struct {
	cron     *gocron.Scheduler
	counter  DueCounter
	notifier Notifier
	cfg      Config
	now      func() time.Time
	logger   *slog.Logger
}

func New(counter DueCounter, notifier Notifier, cfg Config, opts ...Option) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Every <= 0 {
		cfg.Every = time.Hour
	}
	s := &Scheduler{
		cron:     gocron.NewScheduler(cfg.Location),
		counter:  counter,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start schedules the check every cfg.Every, running the first one
// immediately, and returns without blocking. Checks stop when ctx is
// cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron.SingletonModeAll()
	_, err := s.cron.Every(s.cfg.Every).Do(func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.Check(ctx); err != nil {
			s.logger.ErrorContext(ctx, "reminder check failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling reminder: %w", err)
	}
	s.cron.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Check runs one reminder pass. It reports whether a notice was sent.
func (s *Scheduler) Check(ctx context.Context) (bool, error) {
	now := s.now().In(s.cfg.Location)
	if !InWindow(now.Hour(), s.cfg.StartHour, s.cfg.EndHour) {
		s.logger.DebugContext(ctx, "outside reminder hours", "hour", now.Hour(),
			"start", s.cfg.StartHour, "end", s.cfg.EndHour)
		return false, nil
	}

	due, err := s.counter.DueCount(ctx)
	if err != nil {
		return false, fmt.Errorf("counting due words: %w", err)
	}
	if due == 0 {
		return false, nil
	}
	if err := s.notifier.Notify(ctx, Notice{Due: due, At: now}); err != nil {
		return false, fmt.Errorf("sending reminder: %w", err)
	}
	return true, nil
}

// InWindow reports whether hour lies in [start, end].
func InWindow(hour, start, end int) bool {
	return hour >= start && hour <= end
}

// WriterNotifier prints notices as one line each.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(_ context.Context, notice Notice) error {
	noun := "words"
	if notice.Due == 1 {
		noun = "word"
	}
	_, err := fmt.Fprintf(n.W, "[%s] %d %s due for review. Run `lexis study` to keep your streak.\n",
		notice.At.Format("15:04"), notice.Due, noun)
	return err
}
