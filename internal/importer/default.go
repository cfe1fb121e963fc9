package importer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/alexanderramin/lexis/internal/domain"
)

// The built-in English A1/A2 to Spanish word list.
//
//go:embed vocabulary.json
var defaultDatasetJSON []byte

var (
	defaultOnce  sync.Once
	defaultVocab domain.Vocabulary
	defaultDups  []string
	defaultErr   error
)

// DefaultVocabulary returns the embedded dataset. The words it lists more
// than once are returned as duplicates; only their first occurrence is
// seeded.
func DefaultVocabulary() (domain.Vocabulary, []string, error) {
	defaultOnce.Do(func() {
		ds, err := ParseDataset(defaultDatasetJSON)
		if err != nil {
			defaultErr = fmt.Errorf("embedded dataset: %w", err)
			return
		}
		vocab, dups, err := Convert(ds)
		if err != nil {
			defaultErr = fmt.Errorf("embedded dataset: %w", err)
			return
		}
		defaultVocab, defaultDups = vocab, dups
	})
	return defaultVocab, defaultDups, defaultErr
}
