package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WordSet holds word records keyed by word text while remembering insertion
// order. Order matters: selection policies walk words in seeding order, and
// the JSON form keeps that order across save and load.
type WordSet struct {
	keys   []string
	byWord map[string]*WordRecord
}

func NewWordSet() *WordSet {
	return &WordSet{byWord: make(map[string]*WordRecord)}
}

func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Get returns the live record for word.
func (s *WordSet) Get(word string) (*WordRecord, bool) {
	if s == nil {
		return nil, false
	}
	w, ok := s.byWord[word]
	return w, ok
}

// Add inserts rec unless its word is already present. Returns false when
// the word existed; the existing record is left untouched.
func (s *WordSet) Add(rec *WordRecord) bool {
	if s.byWord == nil {
		s.byWord = make(map[string]*WordRecord)
	}
	if _, ok := s.byWord[rec.Word]; ok {
		return false
	}
	s.keys = append(s.keys, rec.Word)
	s.byWord[rec.Word] = rec
	return true
}

// Keys returns the words in insertion order.
func (s *WordSet) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Records returns the live records in insertion order.
func (s *WordSet) Records() []*WordRecord {
	if s == nil {
		return nil
	}
	out := make([]*WordRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byWord[k])
	}
	return out
}

// Values returns copies of all records in insertion order.
func (s *WordSet) Values() []WordRecord {
	if s == nil {
		return nil
	}
	out := make([]WordRecord, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, *s.byWord[k].Clone())
	}
	return out
}

// Clone returns a deep copy.
func (s *WordSet) Clone() *WordSet {
	c := NewWordSet()
	if s == nil {
		return c
	}
	for _, k := range s.keys {
		c.Add(s.byWord[k].Clone())
	}
	return c
}

func (s *WordSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if s != nil {
		for i, k := range s.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(s.byWord[k])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *WordSet) UnmarshalJSON(data []byte) error {
	*s = WordSet{byWord: make(map[string]*WordRecord)}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading words: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("words: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading word key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("words: expected string key, got %v", tok)
		}
		var rec WordRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("decoding word %q: %w", key, err)
		}
		if rec.Word == "" {
			rec.Word = key
		}
		if _, dup := s.byWord[key]; dup {
			// Later duplicates replace the value but keep the first position,
			// mirroring how object keys behave when re-assigned.
			s.byWord[key] = &rec
			continue
		}
		s.keys = append(s.keys, key)
		s.byWord[key] = &rec
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading words: %w", err)
	}
	return nil
}
