package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCategoryName(t *testing.T) {
	cases := map[string]string{
		"DAYS_AND_NUMBERS":               "Days And Numbers",
		"TIME":                           "Time",
		"VERBS_THAT_TAKE_THE_INFINITIVE": "Verbs That Take The Infinitive",
		"already_lower":                  "already lower",
		"":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCategoryName(in), "input=%q", in)
	}
}

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "📅", CategoryIcon("DAYS_AND_NUMBERS"))
	assert.Equal(t, DefaultCategoryIcon, CategoryIcon("UNKNOWN"))
}
