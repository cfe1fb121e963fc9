package domain

import "fmt"

// Level is the coarse mastery bucket of a word.
type Level int

const (
	LevelNew Level = iota
	LevelLearning
	LevelFamiliar
	LevelMastered
)

func (l Level) String() string {
	switch l {
	case LevelNew:
		return "new"
	case LevelLearning:
		return "learning"
	case LevelFamiliar:
		return "familiar"
	case LevelMastered:
		return "mastered"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l is one of the four known levels.
func (l Level) Valid() bool {
	return l >= LevelNew && l <= LevelMastered
}

type StudyMode string

const (
	ModeFlashcard StudyMode = "flashcard"
	ModeQuiz      StudyMode = "quiz"
	ModeTyping    StudyMode = "typing"
	ModeListening StudyMode = "listening"
)

// StudyModes lists the presentation modes in menu order.
var StudyModes = []StudyMode{ModeFlashcard, ModeQuiz, ModeTyping, ModeListening}

// ValidStudyModes is the canonical set of accepted mode strings.
var ValidStudyModes = map[string]bool{
	"flashcard": true, "quiz": true, "typing": true, "listening": true,
}

// Label returns the menu label for a mode.
func (m StudyMode) Label() string {
	switch m {
	case ModeFlashcard:
		return "Flashcards"
	case ModeQuiz:
		return "Quiz"
	case ModeTyping:
		return "Typing"
	case ModeListening:
		return "Listening"
	default:
		return string(m)
	}
}

// SelectionPolicy names how the cards of a session were chosen.
type SelectionPolicy string

const (
	PolicyDaily    SelectionPolicy = "daily"
	PolicyNew      SelectionPolicy = "new"
	PolicyCategory SelectionPolicy = "category"
)

var ValidSelectionPolicies = map[string]bool{
	"daily": true, "new": true, "category": true,
}

type ActivityType string

const (
	ActivityStudySession ActivityType = "study_session"
)
