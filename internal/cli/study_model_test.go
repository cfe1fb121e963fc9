package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lexis/internal/app"
	"github.com/alexanderramin/lexis/internal/domain"
	"github.com/alexanderramin/lexis/internal/session"
	"github.com/alexanderramin/lexis/internal/teatest"
)

func startStudy(t *testing.T, env *testEnv, req app.StudyRequest) *teatest.Driver {
	t.Helper()
	ctx := context.Background()
	runner, err := env.app.Study.Prepare(ctx, req)
	require.NoError(t, err)
	require.NoError(t, runner.Start(ctx, req.Mode))

	d := teatest.New(t, newStudyModel(ctx, runner, nil), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func studyModelOf(d *teatest.Driver) *studyModel {
	return d.Model.(*studyModel)
}

func TestStudyModel_FlashcardSession(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyNew, Mode: domain.ModeFlashcard})

	first := studyModelOf(d).card.Record
	view := d.ViewPlain()
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, first.Word)
	assert.NotContains(t, view, first.Translation, "translation hidden until revealed")

	d.PressKey('3')
	assert.Equal(t, phaseAsking, studyModelOf(d).phase, "grades ignored before reveal")

	d.PressSpace()
	assert.Contains(t, d.ViewPlain(), "→ "+first.Translation)

	for i := 0; i < 3; i++ {
		if i > 0 {
			d.PressSpace()
		}
		d.PressKey('4')
		require.Equal(t, phaseAnswered, studyModelOf(d).phase)
		d.PressEnter()
	}

	m := studyModelOf(d)
	assert.Equal(t, phaseDone, m.phase)
	assert.NoError(t, m.completeErr)
	assert.Contains(t, d.ViewPlain(), "session complete")

	acts := env.store.Activities()
	require.Len(t, acts, 1)
	assert.Equal(t, 3, acts[0].Details.Correct)

	d.PressEnter()
	assert.True(t, d.Quitting)
}

func TestStudyModel_QuizPickByDigit(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyCategory, Category: "ANIMALS", Mode: domain.ModeQuiz})

	m := studyModelOf(d)
	correct := -1
	for i, opt := range m.card.Prompt.Options {
		if opt == m.card.Record.Translation {
			correct = i
		}
	}
	require.GreaterOrEqual(t, correct, 0)

	d.PressKey(rune('1' + correct))
	m = studyModelOf(d)
	require.NotNil(t, m.verdict)
	assert.True(t, m.verdict.Correct)
	assert.Contains(t, d.ViewPlain(), "Correct!")

	rec, ok := env.store.Word(m.card.Record.Word)
	require.True(t, ok)
	assert.Equal(t, 1, rec.CorrectCount)
}

func TestStudyModel_QuizArrowNavigation(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyCategory, Category: "ANIMALS", Mode: domain.ModeQuiz})

	d.PressDown()
	assert.Equal(t, 1, studyModelOf(d).selected)
	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, studyModelOf(d).selected, "selection stops at the top")

	d.PressEnter()
	assert.Equal(t, phaseAnswered, studyModelOf(d).phase)
}

func TestStudyModel_TypingWrongAnswerShowsExpected(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyCategory, Category: "GREETINGS", Mode: domain.ModeTyping})

	assert.Contains(t, d.ViewPlain(), "hello-es")
	assert.Equal(t, "type the word", studyModelOf(d).input.Placeholder)

	d.PressEnter()
	assert.Equal(t, phaseAsking, studyModelOf(d).phase, "empty input is not submitted")

	d.Submit("helo")
	view := d.ViewPlain()
	assert.Contains(t, view, "Not quite.")
	assert.Contains(t, view, "Answer: hello")
	assert.Contains(t, view, "You wrote: helo")

	rec, ok := env.store.Word("hello")
	require.True(t, ok)
	assert.Equal(t, 1, rec.IncorrectCount)
}

func TestStudyModel_ListeningWithoutAudio(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyCategory, Category: "GREETINGS", Mode: domain.ModeListening})

	view := d.ViewPlain()
	assert.Contains(t, view, "Listen and type what you hear")
	assert.Contains(t, view, "Audio unavailable")
	assert.NotContains(t, view, "hello")
	assert.Equal(t, "type what you hear", studyModelOf(d).input.Placeholder)

	d.Submit("Hello")
	m := studyModelOf(d)
	require.NotNil(t, m.verdict)
	assert.True(t, m.verdict.Correct)
}

func TestStudyModel_EscAbandonsWithoutLogging(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyNew, Mode: domain.ModeTyping})

	first := studyModelOf(d).card.Record.Word
	d.Submit(first)
	d.PressEnter()
	d.PressEsc()

	assert.True(t, d.Quitting)
	assert.Equal(t, session.StateNotStarted, studyModelOf(d).runner.State())
	assert.Contains(t, d.ViewPlain(), "Session abandoned")
	assert.Empty(t, env.store.Activities())

	rec, _ := env.store.Word(first)
	assert.Equal(t, 1, rec.CorrectCount, "answers before quitting stay graded")
}

func TestStudyModel_TickKeepsWaiting(t *testing.T) {
	env := newTestEnv(t)
	d := startStudy(t, env, app.StudyRequest{Policy: domain.PolicyNew, Mode: domain.ModeFlashcard})

	d.Send(tickMsg(0))
	d.Send(speechDoneMsg{})
	assert.False(t, studyModelOf(d).speaking)
	assert.False(t, d.Quitting)
}
