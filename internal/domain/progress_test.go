package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVocabulary() Vocabulary {
	return Vocabulary{Groups: []VocabularyGroup{
		{Name: "File 1", Categories: []VocabularyCategory{
			{Name: "THINGS", Entries: []VocabularyEntry{{"watch", "reloj"}, {"bag", "bolso"}}},
		}},
		{Name: "File 2", Categories: []VocabularyCategory{
			{Name: "VERB_PHRASES", Entries: []VocabularyEntry{{"watch", "mirar"}, {"run", "correr"}}},
		}},
	}}
}

func TestVocabularySeed_FirstOccurrenceWins(t *testing.T) {
	words := NewWordSet()
	added := sampleVocabulary().Seed(words, seedNow)

	assert.Equal(t, 3, added)
	assert.Equal(t, []string{"watch", "bag", "run"}, words.Keys())
	w, _ := words.Get("watch")
	assert.Equal(t, "reloj", w.Translation)
	assert.Equal(t, "THINGS", w.Category)
	assert.Equal(t, "File 1", w.SourceFile)
}

func TestVocabularySeed_KeepsExistingProgress(t *testing.T) {
	words := NewWordSet()
	sampleVocabulary().Seed(words, seedNow)
	bag, _ := words.Get("bag")
	bag.CorrectCount = 4

	assert.Equal(t, 0, sampleVocabulary().Seed(words, seedNow))
	bag, _ = words.Get("bag")
	assert.Equal(t, 4, bag.CorrectCount)
}

func TestProgressJSONRoundTrip(t *testing.T) {
	p := NewProgress()
	sampleVocabulary().Seed(p.Words, seedNow)
	rec, _ := p.Words.Get("run")
	rec.LastReviewed = MillisPtr(seedNow)
	rec.Interval = 6
	p.Stats.RecordStudyDay(seedNow, nil)
	p.Activities = p.Activities.Prepend(Activity{Type: ActivityStudySession, Timestamp: MillisOf(seedNow)})

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var back Progress
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p.Words.Values(), back.Words.Values())
	assert.Equal(t, p.Stats, back.Stats)
	assert.Equal(t, p.Activities, back.Activities)
}

func TestProgressValidate(t *testing.T) {
	p := NewProgress()
	sampleVocabulary().Seed(p.Words, seedNow)
	require.NoError(t, p.Validate())

	p.Stats.CorrectAnswers = 3
	assert.Error(t, p.Validate())
}

func TestProgressNormalize(t *testing.T) {
	p := &Progress{Stats: ProgressStats{Streak: -1, CorrectAnswers: 4, TotalAnswers: 2}}
	assert.True(t, p.Normalize())
	assert.NotNil(t, p.Words)
	assert.Equal(t, 0, p.Stats.Streak)
	assert.Equal(t, 4, p.Stats.TotalAnswers)
	require.NoError(t, p.Validate())
}

func TestProgress_WordKeyMismatch(t *testing.T) {
	var p Progress
	require.NoError(t, json.Unmarshal([]byte(`{"words":{"cat":{"word":"Cat","translation":"gato","category":"ANIMALS","level":0,"easeFactor":2.5}}}`), &p))
	assert.ErrorContains(t, p.Validate(), `stored under key "cat"`)

	assert.True(t, p.Normalize())
	rec, ok := p.Words.Get("cat")
	require.True(t, ok)
	assert.Equal(t, "cat", rec.Word)
	require.NoError(t, p.Validate())
}

func TestProgressClone(t *testing.T) {
	p := NewProgress()
	sampleVocabulary().Seed(p.Words, seedNow)
	p.Stats.LastStudyDate = MillisPtr(seedNow)

	c := p.Clone()
	*c.Stats.LastStudyDate = 0
	rec, _ := c.Words.Get("bag")
	rec.Level = LevelMastered

	assert.Equal(t, MillisOf(seedNow), *p.Stats.LastStudyDate)
	orig, _ := p.Words.Get("bag")
	assert.Equal(t, LevelNew, orig.Level)
}
