package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "grade-word",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"word": "cat"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "reset-progress",
		Err:  errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, "msg=lexis_use_case")
	assert.Contains(t, out, "use_case=grade-word")
	assert.Contains(t, out, "word=cat")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="disk full"`)
}

func TestLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}

func TestLogUseCaseObserver_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	fields := map[string]any{"word": "cat", "mode": "quiz", "correct": true, "category": "ANIMALS"}
	for range 5 {
		obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "grade-word", Fields: fields, Success: true})
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		cat := strings.Index(line, "category=")
		cor := strings.Index(line, "correct=")
		mode := strings.Index(line, "mode=")
		word := strings.Index(line, "word=")
		assert.True(t, cat < cor && cor < mode && mode < word, line)
	}
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	obs := useCaseObserverOrNoop([]UseCaseObserver{nil, NewLogUseCaseObserver(&a), NewLogUseCaseObserver(&b)})

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import-words", Success: true})

	assert.Contains(t, a.String(), "use_case=import-words")
	assert.Contains(t, b.String(), "use_case=import-words")
}
