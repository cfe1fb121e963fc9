// Package store owns the learner's progress: it loads the snapshot once,
// applies every mutation in memory and saves the whole snapshot after each
// one.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/lexis/internal/db"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/repository"
	"github.com/alexanderramin/lexis/internal/scheduler"
)

// ErrInvalidSnapshot wraps a restore payload that fails to parse or
// validate.
var ErrInvalidSnapshot = errors.New("invalid progress snapshot")

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone whose midnights delimit study days.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKey overrides the snapshot key, mainly for tests.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithBackups enables Backups listing.
func WithBackups(repo repository.BackupRepo) Option {
	return func(s *Store) { s.backups = repo }
}

// Store is the single owner of in-memory progress. It is not safe for
// concurrent use.
type Store struct {
	snapshots repository.SnapshotRepo
	backups   repository.BackupRepo
	uow       db.UnitOfWork
	vocab     domain.Vocabulary
	now       func() time.Time
	loc       *time.Location
	logger    *slog.Logger
	key       string

	progress *domain.Progress
}

// Open loads the stored snapshot, falling back to fresh progress when it
// is missing or unreadable, and seeds any dataset words not yet tracked.
func Open(ctx context.Context, snapshots repository.SnapshotRepo, uow db.UnitOfWork, vocab domain.Vocabulary, opts ...Option) (*Store, error) {
	s := &Store{
		snapshots: snapshots,
		uow:       uow,
		vocab:     vocab,
		now:       time.Now,
		loc:       time.Local,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		key:       repository.ProgressKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	now := s.now()
	dirty := false

	p, err := s.snapshots.Load(ctx, s.key)
	switch {
	case err == nil:
		if p.Normalize() {
			s.logger.WarnContext(ctx, "repaired stored progress", "key", s.key)
			dirty = true
		}
	case errors.Is(err, repository.ErrNotFound):
		s.logger.InfoContext(ctx, "no stored progress, starting fresh", "key", s.key)
		p, dirty = domain.NewProgress(), true
	case errors.Is(err, repository.ErrCorruptSnapshot):
		s.logger.WarnContext(ctx, "stored progress unreadable, starting fresh", "key", s.key, "error", err)
		p, dirty = domain.NewProgress(), true
	default:
		return fmt.Errorf("loading progress: %w", err)
	}

	if added := s.vocab.Seed(p.Words, now); added > 0 {
		s.logger.InfoContext(ctx, "seeded words", "added", added)
		dirty = true
	}
	if p.Stats.CheckStreakValidity(now, s.loc) {
		dirty = true
	}

	s.progress = p
	if dirty {
		return s.save(ctx)
	}
	return nil
}

func (s *Store) save(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, s.key, s.progress); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

// Reload discards in-memory state and reads the stored snapshot again.
func (s *Store) Reload(ctx context.Context) error {
	return s.load(ctx)
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// Words returns copies of all records in seeding order.
func (s *Store) Words() []domain.WordRecord {
	return s.progress.Words.Values()
}

func (s *Store) Word(word string) (domain.WordRecord, bool) {
	rec, ok := s.progress.Words.Get(word)
	if !ok {
		return domain.WordRecord{}, false
	}
	return *rec.Clone(), true
}

// Translations lists every record's translation, the quiz distractor pool.
func (s *Store) Translations() []string {
	recs := s.progress.Words.Records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Translation
	}
	return out
}

func (s *Store) Stats() domain.ProgressStats {
	st := s.progress.Stats
	if st.LastStudyDate != nil {
		d := *st.LastStudyDate
		st.LastStudyDate = &d
	}
	return st
}

func (s *Store) Activities() domain.ActivityLog {
	return append(domain.ActivityLog(nil), s.progress.Activities...)
}

// Snapshot returns a deep copy of the whole progress.
func (s *Store) Snapshot() *domain.Progress {
	return s.progress.Clone()
}

// Grade schedules word after one answer and saves. Unknown words are a
// no-op returning (nil, nil). A failed save leaves memory unchanged.
func (s *Store) Grade(ctx context.Context, word string, difficulty int) (*domain.WordRecord, error) {
	rec, ok := s.progress.Words.Get(word)
	if !ok {
		return nil, nil
	}
	prevRec, prevStats := *rec.Clone(), s.progress.Stats

	out := scheduler.Grade(rec, difficulty, s.now())
	s.progress.Stats.RecordAnswer(out.Correct)

	if err := s.save(ctx); err != nil {
		*rec = prevRec
		s.progress.Stats = prevStats
		return nil, err
	}
	return rec.Clone(), nil
}

// CompleteSession folds a finished session into the lifetime stats,
// advances the streak and logs the activity, all in one save.
func (s *Store) CompleteSession(ctx context.Context, summary domain.SessionSummary) error {
	prevStats, prevLog := s.progress.Stats, s.progress.Activities

	end := summary.EndedAt
	if end.IsZero() {
		end = s.now()
		summary.EndedAt = end
	}
	s.progress.Stats.FoldSession(summary.Stats, summary.Duration)
	s.progress.Stats.RecordStudyDay(end, s.loc)
	s.progress.Activities = s.progress.Activities.Prepend(summary.Activity())

	if err := s.save(ctx); err != nil {
		s.progress.Stats = prevStats
		s.progress.Activities = prevLog
		return err
	}
	return nil
}

// Seed adds records for entries of vocab not yet tracked and saves when
// anything was added.
func (s *Store) Seed(ctx context.Context, vocab domain.Vocabulary) (int, error) {
	before := s.progress.Words.Clone()
	added := vocab.Seed(s.progress.Words, s.now())
	if added == 0 {
		return 0, nil
	}
	if err := s.save(ctx); err != nil {
		s.progress.Words = before
		return 0, err
	}
	return added, nil
}

// Export returns the snapshot as indented JSON in the stored layout.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.progress, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding progress: %w", err)
	}
	return data, nil
}

// Restore replaces progress with an exported snapshot. The payload must
// parse and validate; the replaced snapshot is kept as a backup. Dataset
// words missing from the payload are seeded.
func (s *Store) Restore(ctx context.Context, data []byte) error {
	var p domain.Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if p.Words == nil {
		return fmt.Errorf("%w: missing words", ErrInvalidSnapshot)
	}
	if p.Activities == nil {
		p.Activities = domain.ActivityLog{}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	s.vocab.Seed(p.Words, s.now())

	if err := s.replace(ctx, &p, repository.BackupRestore); err != nil {
		return fmt.Errorf("restoring progress: %w", err)
	}
	return nil
}

// Reset wipes all progress and starts over from the dataset.
func (s *Store) Reset(ctx context.Context) error {
	fresh := domain.NewProgress()
	s.vocab.Seed(fresh.Words, s.now())

	if err := s.replace(ctx, fresh, repository.BackupReset); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	return nil
}

// replace backs up the stored blob, removes it and writes p, atomically.
func (s *Store) replace(ctx context.Context, p *domain.Progress, reason repository.BackupReason) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		snapshots := repository.NewSQLiteSnapshotRepo(tx)
		backups := repository.NewSQLiteBackupRepo(tx)

		raw, err := snapshots.LoadRaw(ctx, s.key)
		switch {
		case err == nil:
			if err := backups.Create(ctx, &repository.Backup{Key: s.key, Value: raw, Reason: reason, CreatedAt: s.now()}); err != nil {
				return err
			}
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		if err := snapshots.Delete(ctx, s.key); err != nil {
			return err
		}
		return snapshots.Save(ctx, s.key, p)
	})
	if err != nil {
		return err
	}
	s.progress = p
	return nil
}

// Backups lists the newest saved copies, newest first.
func (s *Store) Backups(ctx context.Context, limit int) ([]repository.Backup, error) {
	if s.backups == nil {
		return nil, nil
	}
	return s.backups.List(ctx, s.key, limit)
}
