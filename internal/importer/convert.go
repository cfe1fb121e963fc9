package importer

import (
	"errors"
	"strings"

	"github.com/alexanderramin/lexis/internal/domain"
)

// DefaultGroup names the group of spreadsheet rows that leave it blank.
const DefaultGroup = "Imported"

// ToVocabulary converts a validated dataset into the domain form, trimming
// surrounding whitespace. Blank words are skipped.
func ToVocabulary(ds *Dataset) domain.Vocabulary {
	v := domain.Vocabulary{Source: ds.Source, Target: ds.Target}
	for _, g := range ds.Groups {
		group := domain.VocabularyGroup{Name: strings.TrimSpace(g.Name)}
		for _, c := range g.Categories {
			cat := domain.VocabularyCategory{Name: strings.TrimSpace(c.Name)}
			for _, w := range c.Words {
				word := strings.TrimSpace(w.Word)
				if word == "" {
					continue
				}
				cat.Entries = append(cat.Entries, domain.VocabularyEntry{
					Word:        word,
					Translation: strings.TrimSpace(w.Translation),
				})
			}
			group.Categories = append(group.Categories, cat)
		}
		v.Groups = append(v.Groups, group)
	}
	return v
}

// Convert validates ds and converts it. Duplicate words do not fail the
// conversion; they are returned so callers can report them.
func Convert(ds *Dataset) (domain.Vocabulary, []string, error) {
	errs, dups := withoutDuplicates(ValidateDataset(ds))
	if len(errs) > 0 {
		return domain.Vocabulary{}, dups, errors.Join(errs...)
	}
	return ToVocabulary(ds), dups, nil
}

// Row is one spreadsheet line: word, translation, category, group.
type Row struct {
	Line        int
	Word        string
	Translation string
	Category    string
	Group       string
}

// FromRows groups rows into a dataset, keeping groups and categories in
// first-seen order.
func FromRows(rows []Row) *Dataset {
	ds := &Dataset{Version: DatasetVersion}
	groupIdx := map[string]int{}
	catIdx := map[[2]string]int{}

	for _, r := range rows {
		gname := strings.TrimSpace(r.Group)
		if gname == "" {
			gname = DefaultGroup
		}
		gi, ok := groupIdx[gname]
		if !ok {
			gi = len(ds.Groups)
			groupIdx[gname] = gi
			ds.Groups = append(ds.Groups, GroupImport{Name: gname})
		}

		cname := strings.TrimSpace(r.Category)
		key := [2]string{gname, cname}
		ci, ok := catIdx[key]
		if !ok {
			ci = len(ds.Groups[gi].Categories)
			catIdx[key] = ci
			ds.Groups[gi].Categories = append(ds.Groups[gi].Categories, CategoryImport{Name: cname})
		}

		cat := &ds.Groups[gi].Categories[ci]
		cat.Words = append(cat.Words, WordImport{Word: r.Word, Translation: r.Translation, Row: r.Line})
	}
	return ds
}
