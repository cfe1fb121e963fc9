package domain

import "time"

// VocabularyEntry is one immutable word/translation pair from the dataset.
type VocabularyEntry struct {
	Word        string
	Translation string
}

type VocabularyCategory struct {
	Name    string
	Entries []VocabularyEntry
}

type VocabularyGroup struct {
	Name       string
	Categories []VocabularyCategory
}

// Vocabulary is the ordered static dataset: group, then category, then
// entries.
type Vocabulary struct {
	Source string
	Target string
	Groups []VocabularyGroup
}

// Each visits every entry in dataset order.
func (v Vocabulary) Each(fn func(group, category string, e VocabularyEntry)) {
	for _, g := range v.Groups {
		for _, c := range g.Categories {
			for _, e := range c.Entries {
				fn(g.Name, c.Name, e)
			}
		}
	}
}

// Len counts entries, duplicates included.
func (v Vocabulary) Len() int {
	n := 0
	v.Each(func(string, string, VocabularyEntry) { n++ })
	return n
}

// Seed adds a fresh record for every entry missing from words. The first
// occurrence of a word wins. Returns the number of records added.
func (v Vocabulary) Seed(words *WordSet, now time.Time) int {
	added := 0
	v.Each(func(group, category string, e VocabularyEntry) {
		if words.Add(NewWordRecord(e.Word, e.Translation, category, group, now)) {
			added++
		}
	})
	return added
}
