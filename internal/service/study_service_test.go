package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/scheduler"
	"github.com/alexanderramin/lexis/internal/session"
)

func TestStudy_NewWordsTypingSession(t *testing.T) {
	st, clock := setupStore(t, testVocab)
	obs := &recordingObserver{}
	svc := NewStudyService(st, nil, 15, WithStudyObservers(obs))
	ctx := context.Background()

	req := app.NewStudyRequest()
	req.Policy = domain.PolicyNew
	req.Mode = domain.ModeTyping

	runner, err := svc.Prepare(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 3, runner.Len())
	require.NoError(t, runner.Start(ctx, domain.ModeTyping))

	for runner.State() == session.StateInProgress {
		card, err := runner.Current()
		require.NoError(t, err)
		v, err := runner.Answer(ctx, session.Response{Text: "  " + strings.ToUpper(card.Record.Word) + " "})
		require.NoError(t, err)
		assert.True(t, v.Correct)
		clock.Advance(20 * time.Second)
		require.NoError(t, runner.Next(ctx))
	}

	for _, w := range st.Words() {
		assert.Equal(t, 1, w.CorrectCount, w.Word)
		assert.Equal(t, domain.LevelLearning, w.Level, w.Word)
		assert.Equal(t, 1, w.Interval, w.Word)
	}

	stats := st.Stats()
	assert.Equal(t, 3, stats.TotalStudied)
	assert.Equal(t, 3, stats.CorrectAnswers)
	assert.Equal(t, 3, stats.TotalAnswers)
	assert.Equal(t, 1, stats.TotalTime)
	assert.Equal(t, 1, stats.Streak)

	acts := st.Activities()
	require.Len(t, acts, 1)
	assert.Equal(t, domain.ActivityStudySession, acts[0].Type)
	assert.Equal(t, domain.ModeTyping, acts[0].Details.Mode)
	assert.Equal(t, 3, acts[0].Details.Words)
	assert.Equal(t, 3, acts[0].Details.Correct)
	assert.Equal(t, 60, acts[0].Details.Duration)
	assert.Equal(t, domain.PolicyNew, acts[0].Details.Policy)

	assert.Equal(t, []string{"prepare-session", "grade-word", "grade-word", "grade-word", "complete-session"}, obs.names())
	done := obs.last()
	assert.True(t, done.Success)
	assert.Equal(t, 3, done.Fields["words"])
}

func TestStudy_DailyReviewNothingDue(t *testing.T) {
	st, clock := setupStore(t, testVocab)
	ctx := context.Background()
	for _, w := range st.Words() {
		_, err := st.Grade(ctx, w.Word, 4)
		require.NoError(t, err)
	}
	clock.Advance(time.Hour)

	obs := &recordingObserver{}
	svc := NewStudyService(st, nil, 0, WithStudyObservers(obs))

	_, err := svc.Prepare(ctx, app.NewStudyRequest())
	require.ErrorIs(t, err, scheduler.ErrNothingDue)
	assert.False(t, obs.last().Success)

	clock.Advance(24 * time.Hour)
	runner, err := svc.Prepare(ctx, app.NewStudyRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, runner.Len())
}

func TestStudy_CategorySession(t *testing.T) {
	st, _ := setupStore(t, testVocab)
	svc := NewStudyService(st, nil, 0)
	ctx := context.Background()

	req := app.StudyRequest{Policy: domain.PolicyCategory, Category: "ANIMALS", Mode: domain.ModeQuiz}
	runner, err := svc.Prepare(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, runner.Len())
	assert.Equal(t, "ANIMALS", runner.Category())
	assert.Equal(t, domain.PolicyCategory, runner.Policy())

	require.NoError(t, runner.Start(ctx, domain.ModeQuiz))
	card, err := runner.Current()
	require.NoError(t, err)
	assert.Contains(t, card.Prompt.Options, card.Record.Translation)
}

func TestStudy_RequestLimitOverridesDefault(t *testing.T) {
	st, _ := setupStore(t, testVocab)
	svc := NewStudyService(st, nil, 15)

	req := app.StudyRequest{Policy: domain.PolicyNew, Mode: domain.ModeFlashcard, Limit: 2}
	runner, err := svc.Prepare(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, runner.Len())
}

func TestStudy_InvalidRequest(t *testing.T) {
	st, _ := setupStore(t, testVocab)
	svc := NewStudyService(st, nil, 0)

	tests := []app.StudyRequest{
		{Policy: "weekly", Mode: domain.ModeQuiz},
		{Policy: domain.PolicyDaily, Mode: "dictation"},
		{Policy: domain.PolicyCategory, Mode: domain.ModeQuiz},
		{Policy: domain.PolicyNew, Mode: domain.ModeQuiz, Limit: -1},
	}
	for _, req := range tests {
		_, err := svc.Prepare(context.Background(), req)
		assert.Error(t, err, "%+v", req)
	}
}

func TestStudy_FailedAnswerIsGradedIncorrect(t *testing.T) {
	st, _ := setupStore(t, testVocab)
	svc := NewStudyService(st, nil, 0)
	ctx := context.Background()

	req := app.StudyRequest{Policy: domain.PolicyCategory, Category: "GREETINGS", Mode: domain.ModeTyping}
	runner, err := svc.Prepare(ctx, req)
	require.NoError(t, err)
	require.NoError(t, runner.Start(ctx, domain.ModeTyping))

	v, err := runner.Answer(ctx, session.Response{Text: "adiós"})
	require.NoError(t, err)
	assert.False(t, v.Correct)
	require.NotNil(t, v.Record)
	assert.Equal(t, 1, v.Record.IncorrectCount)
	assert.InDelta(t, 2.3, v.Record.EaseFactor, 1e-9)

	require.NoError(t, runner.Next(ctx))
	assert.Equal(t, session.StateComplete, runner.State())
	assert.Equal(t, 0, st.Activities()[0].Details.Correct)
}

// keepOrder never swaps, so a shuffle leaves its input untouched.
type keepOrder struct{}

func (keepOrder) IntN(n int) int { return n - 1 }

// frontSwap always picks index 0, rotating the input left by one.
type frontSwap struct{}

func (frontSwap) IntN(int) int { return 0 }

func sessionOrder(t *testing.T, svc StudyService) []string {
	t.Helper()
	ctx := context.Background()
	req := app.StudyRequest{Policy: domain.PolicyNew, Mode: domain.ModeTyping}
	runner, err := svc.Prepare(ctx, req)
	require.NoError(t, err)
	require.NoError(t, runner.Start(ctx, domain.ModeTyping))
	defer runner.Abandon()

	var order []string
	for i := 0; i < runner.Len(); i++ {
		card, err := runner.Current()
		require.NoError(t, err)
		order = append(order, card.Record.Word)
		if i == runner.Len()-1 {
			break
		}
		_, err = runner.Answer(ctx, session.Response{Text: card.Record.Word})
		require.NoError(t, err)
		require.NoError(t, runner.Next(ctx))
	}
	return order
}

func TestStudy_SelectionRandomFixesCardOrder(t *testing.T) {
	st, _ := setupStore(t, testVocab)
	var stored []string
	for _, w := range st.Words() {
		stored = append(stored, w.Word)
	}
	require.Len(t, stored, 3)

	got := sessionOrder(t, NewStudyService(st, nil, 0, WithSelectionRandom(keepOrder{})))
	assert.Equal(t, stored, got)

	// grading above used up the new words of st
	fresh, _ := setupStore(t, testVocab)
	got = sessionOrder(t, NewStudyService(fresh, nil, 0, WithSelectionRandom(frontSwap{})))
	assert.Equal(t, []string{stored[1], stored[2], stored[0]}, got)
}

func TestStudy_SeededSelectionIsReproducible(t *testing.T) {
	run := func() []string {
		st, _ := setupStore(t, testVocab)
		return sessionOrder(t, NewStudyService(st, nil, 0, WithSelectionRandom(rand.New(rand.NewPCG(7, 11)))))
	}
	assert.Equal(t, run(), run())
}
