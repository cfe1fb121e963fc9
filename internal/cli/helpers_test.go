package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lexis/internal/reminder"
	"github.com/alexanderramin/lexis/internal/repository"
	"github.com/alexanderramin/lexis/internal/service"
	"github.com/alexanderramin/lexis/internal/store"
	"github.com/alexanderramin/lexis/internal/testutil"
)

var testVocab = testutil.NewTestVocabulary(map[string][]string{
	"ANIMALS":   {"dog", "cat"},
	"GREETINGS": {"hello"},
}, "ANIMALS", "GREETINGS")

type testEnv struct {
	app   *App
	store *store.Store
	now   time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	now := testutil.FixedNow
	st, err := store.Open(context.Background(),
		repository.NewSQLiteSnapshotRepo(database),
		testutil.NewTestUoW(database),
		testVocab,
		store.WithClock(func() time.Time { return now }),
		store.WithLocation(time.UTC),
		store.WithBackups(repository.NewSQLiteBackupRepo(database)),
	)
	require.NoError(t, err)

	return &testEnv{
		store: st,
		now:   now,
		app: &App{
			Study:  service.NewStudyService(st, nil, 0),
			Status: service.NewStatusService(st),
			Import: service.NewImportService(st),
			Backup: service.NewBackupService(st),
			Remind: reminder.Config{Every: time.Hour, StartHour: 0, EndHour: 23, Location: time.UTC},
			Now:    func() time.Time { return now },
		},
	}
}

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func (e *testEnv) execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(e.app)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return stripANSI(out.String()), stripANSI(errOut.String()), err
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
