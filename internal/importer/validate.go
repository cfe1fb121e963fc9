package importer

import (
	"errors"
	"fmt"
	"strings"
)

// DuplicateWordError reports a word that appears more than once. The first
// occurrence is the one that gets seeded.
type DuplicateWordError struct {
	Word     string
	Location string
	First    string
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("%s: duplicate word %q (first seen at %s)", e.Location, e.Word, e.First)
}

func wordLocation(gi, ci, wi int, w WordImport) string {
	if w.Row > 0 {
		return fmt.Sprintf("row %d", w.Row)
	}
	return fmt.Sprintf("groups[%d].categories[%d].words[%d]", gi, ci, wi)
}

// ValidateDataset checks a dataset before conversion and returns every
// problem found.
func ValidateDataset(ds *Dataset) []error {
	var errs []error
	if len(ds.Groups) == 0 {
		return []error{errors.New("dataset has no groups")}
	}

	firstSeen := make(map[string]string)
	for gi, g := range ds.Groups {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("groups[%d]: name is required", gi))
		}
		for ci, c := range g.Categories {
			if strings.TrimSpace(c.Name) == "" {
				loc := fmt.Sprintf("groups[%d].categories[%d]", gi, ci)
				if len(c.Words) > 0 && c.Words[0].Row > 0 {
					loc = fmt.Sprintf("row %d", c.Words[0].Row)
				}
				errs = append(errs, fmt.Errorf("%s: category is required", loc))
			}
			for wi, w := range c.Words {
				loc := wordLocation(gi, ci, wi, w)
				word := strings.TrimSpace(w.Word)
				if word == "" {
					errs = append(errs, fmt.Errorf("%s: word is required", loc))
				}
				if strings.TrimSpace(w.Translation) == "" {
					errs = append(errs, fmt.Errorf("%s: translation is required", loc))
				}
				if word == "" {
					continue
				}
				if first, dup := firstSeen[word]; dup {
					errs = append(errs, &DuplicateWordError{Word: word, Location: loc, First: first})
					continue
				}
				firstSeen[word] = loc
			}
		}
	}
	return errs
}

// withoutDuplicates drops DuplicateWordErrors, returning the rest and the
// duplicated words.
func withoutDuplicates(errs []error) (rest []error, dups []string) {
	for _, err := range errs {
		var dup *DuplicateWordError
		if errors.As(err, &dup) {
			dups = append(dups, dup.Word)
			continue
		}
		rest = append(rest, err)
	}
	return rest, dups
}
