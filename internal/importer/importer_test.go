package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestParseDataset(t *testing.T) {
	ds, err := ParseDataset([]byte(`{"groups":[{"name":"G","categories":[{"name":"C","words":[{"word":"a","translation":"b"}]}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, DatasetVersion, ds.Version)
	assert.Equal(t, 1, ds.Len())
}

func TestParseDataset_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field": `{"groups":[],"colour":"red"}`,
		"bad version":   `{"version":9,"groups":[]}`,
		"not json":      `words`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDataset([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestValidateDataset(t *testing.T) {
	ds := &Dataset{Groups: []GroupImport{{
		Name: "G",
		Categories: []CategoryImport{
			{Name: "C", Words: []WordImport{
				{Word: "cat", Translation: "gato"},
				{Word: "", Translation: "perro"},
				{Word: "bird", Translation: " "},
				{Word: "cat", Translation: "felino"},
			}},
			{Name: "", Words: []WordImport{{Word: "x", Translation: "y"}}},
		},
	}}}

	errs := ValidateDataset(ds)
	require.Len(t, errs, 4)
	joined := errors.Join(errs...).Error()
	assert.Contains(t, joined, "groups[0].categories[0].words[1]: word is required")
	assert.Contains(t, joined, "words[2]: translation is required")
	assert.Contains(t, joined, "category is required")

	var dup *DuplicateWordError
	require.True(t, errors.As(errs[2], &dup))
	assert.Equal(t, "cat", dup.Word)
	assert.Equal(t, "groups[0].categories[0].words[0]", dup.First)
}

func TestValidateDataset_Empty(t *testing.T) {
	assert.Len(t, ValidateDataset(&Dataset{}), 1)
}

func TestFromRows_GroupsInOrder(t *testing.T) {
	ds := FromRows([]Row{
		{Line: 2, Word: "a", Translation: "1", Category: "X", Group: "G2"},
		{Line: 3, Word: "b", Translation: "2", Category: "Y"},
		{Line: 4, Word: "c", Translation: "3", Category: "X", Group: "G2"},
	})

	require.Len(t, ds.Groups, 2)
	assert.Equal(t, "G2", ds.Groups[0].Name)
	assert.Equal(t, DefaultGroup, ds.Groups[1].Name)
	require.Len(t, ds.Groups[0].Categories, 1)
	assert.Len(t, ds.Groups[0].Categories[0].Words, 2)
	assert.Equal(t, 4, ds.Groups[0].Categories[0].Words[1].Row)
}

func TestToVocabulary_Trims(t *testing.T) {
	ds := FromRows([]Row{{Line: 2, Word: " hello ", Translation: " hola", Category: " GREETINGS "}})
	v := ToVocabulary(ds)
	e := v.Groups[0].Categories[0]
	assert.Equal(t, "GREETINGS", e.Name)
	assert.Equal(t, "hello", e.Entries[0].Word)
	assert.Equal(t, "hola", e.Entries[0].Translation)
}

func TestConvert(t *testing.T) {
	ds := FromRows([]Row{
		{Line: 2, Word: "cat", Translation: "gato", Category: "ANIMALS"},
		{Line: 3, Word: "cat", Translation: "felino", Category: "PETS"},
		{Line: 4, Word: "dog", Translation: "perro", Category: "ANIMALS"},
	})

	v, dups, err := Convert(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, dups)
	assert.Equal(t, 3, v.Len(), "duplicates are kept for first-wins seeding")

	ds = FromRows([]Row{{Line: 2, Word: "cat", Category: "ANIMALS"}})
	_, _, err = Convert(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: translation is required")
}

func TestReadCSV(t *testing.T) {
	in := "word,translation,category,group\n" +
		"cat,gato,ANIMALS,Pets\n" +
		"\n" +
		"\"good morning\",\"buenos días\",GREETINGS\n" +
		",vacío,GREETINGS\n"

	ds, err := ReadCSV(strings.NewReader(in), SheetOptions{})
	require.NoError(t, err)
	require.Len(t, ds.Groups, 2)
	assert.Equal(t, "Pets", ds.Groups[0].Name)
	greetings := ds.Groups[1].Categories[0]
	assert.Equal(t, "good morning", greetings.Words[0].Word)
	assert.Equal(t, "buenos días", greetings.Words[0].Translation)

	errs := ValidateDataset(ds)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "row 5: word is required")
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, WriteXLSXTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Monday", "lunes", "DAYS", "Week"},
		{"Tuesday", "martes", "DAYS", "Week"},
	}
	for i, r := range rows {
		require.NoError(t, f.SetSheetRow(sheet, "A"+string(rune('2'+i)), &r))
	}
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	ds, err := LoadFile(path, SheetOptions{})
	require.NoError(t, err)
	assert.Empty(t, ValidateDataset(ds))
	v := ToVocabulary(ds)
	require.Len(t, v.Groups, 1)
	assert.Equal(t, "Week", v.Groups[0].Name)
	assert.Equal(t, 2, v.Len())
}

func TestReadXLSX_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, WriteXLSXTemplate(path))

	_, err := ReadXLSX(path, SheetOptions{Sheet: "Nope"})
	assert.Error(t, err)
}

func TestLoadFile_JSONAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"version":1,"groups":[{"name":"G","categories":[]}]}`), 0o644))

	ds, err := LoadFile(jsonPath, SheetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "G", ds.Groups[0].Name)

	_, err = LoadFile(filepath.Join(dir, "words.txt"), SheetOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
