package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/repository"
	"github.com/alexanderramin/lexis/internal/store"
	"github.com/alexanderramin/lexis/internal/testutil"
)

var testVocab = testutil.NewTestVocabulary(map[string][]string{
	"ANIMALS":   {"dog", "cat"},
	"GREETINGS": {"hello"},
}, "ANIMALS", "GREETINGS")

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func setupStore(t *testing.T, vocab domain.Vocabulary) (*store.Store, *testClock) {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := &testClock{t: testutil.FixedNow}
	s, err := store.Open(context.Background(),
		repository.NewSQLiteSnapshotRepo(database),
		testutil.NewTestUoW(database),
		vocab,
		store.WithClock(clock.Now),
		store.WithLocation(time.UTC),
		store.WithBackups(repository.NewSQLiteBackupRepo(database)),
	)
	require.NoError(t, err)
	return s, clock
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
