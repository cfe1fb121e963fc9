package domain

import (
	"strings"
	"unicode/utf8"
)

// FormatCategoryName turns a dataset tag such as DAYS_AND_NUMBERS into
// "Days And Numbers": the first character of each token is kept as is and
// the rest is lowercased.
func FormatCategoryName(tag string) string {
	tokens := strings.Split(tag, "_")
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(tok)
		tokens[i] = tok[:size] + strings.ToLower(tok[size:])
	}
	return strings.Join(tokens, " ")
}

// DefaultCategoryIcon is shown for categories without a dedicated icon.
const DefaultCategoryIcon = "📚"

var categoryIcons = map[string]string{
	"DAYS_AND_NUMBERS":               "📅",
	"COUNTRIES":                      "🌍",
	"CLASSROOM_LANGUAGE":             "🏫",
	"THINGS":                         "🎒",
	"ADJECTIVES":                     "✨",
	"FEELINGS_AND_COLOURS":           "🎨",
	"VERB_PHRASES":                   "🏃",
	"JOBS":                           "👔",
	"TIME":                           "⏰",
	"THE_FAMILY":                     "👨‍👩‍👧‍👦",
	"DAILY_ROUTINE":                  "🌅",
	"TIME_ADVERBS":                   "⏱️",
	"MORE_VERB_PHRASES":              "🎯",
	"THE_WEATHER":                    "☀️",
	"CLOTHES":                        "👕",
	"DATES":                          "📆",
	"WORDS_IN_A_STORY":               "📖",
	"GO_HAVE_GET":                    "🚶",
	"THE_HOUSE":                      "🏠",
	"PREPOSITIONS":                   "📍",
	"FOOD_AND_DRINK":                 "🍎",
	"HIGH_NUMBERS":                   "🔢",
	"PLACES_AND_BUILDINGS":           "🏛️",
	"COMMON_ADVERBS":                 "💨",
	"VERBS_THAT_TAKE_THE_INFINITIVE": "🎓",
	"PHONES_AND_THE_INTERNET":        "📱",
}

func CategoryIcon(tag string) string {
	if icon, ok := categoryIcons[tag]; ok {
		return icon
	}
	return DefaultCategoryIcon
}
