package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSet_AddKeepsFirst(t *testing.T) {
	s := NewWordSet()
	assert.True(t, s.Add(&WordRecord{Word: "watch", Translation: "mirar"}))
	assert.False(t, s.Add(&WordRecord{Word: "watch", Translation: "reloj"}))

	got, ok := s.Get("watch")
	require.True(t, ok)
	assert.Equal(t, "mirar", got.Translation)
	assert.Equal(t, 1, s.Len())
}

func TestWordSet_JSONPreservesOrder(t *testing.T) {
	s := NewWordSet()
	for _, w := range []string{"zebra", "apple", "mango"} {
		s.Add(&WordRecord{Word: w, Translation: w + "-es", EaseFactor: DefaultEaseFactor})
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back WordSet
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, back.Keys())
	assert.Equal(t, s.Values(), back.Values())
}

func TestWordSet_UnmarshalFillsMissingWord(t *testing.T) {
	var s WordSet
	require.NoError(t, json.Unmarshal([]byte(`{"hola":{"translation":"hello","easeFactor":2.5}}`), &s))

	rec, ok := s.Get("hola")
	require.True(t, ok)
	assert.Equal(t, "hola", rec.Word)
}

func TestWordSet_UnmarshalRejectsArray(t *testing.T) {
	var s WordSet
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
}

func TestWordSet_CloneIsDeep(t *testing.T) {
	s := NewWordSet()
	s.Add(&WordRecord{Word: "a", Interval: 1})

	c := s.Clone()
	rec, _ := c.Get("a")
	rec.Interval = 99

	orig, _ := s.Get("a")
	assert.Equal(t, 1, orig.Interval)
}
