package catalog

// Difficulty is how hard a language is for an English speaker to pick up.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Language describes one entry of the catalog.
type Language struct {
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	Speakers   string     `json:"speakers"` // display string, e.g. "559 million"
	FunFact    string     `json:"fun_fact"`
}

// IsHard reports whether the language is rated Hard.
func (l Language) IsHard() bool {
	return l.Difficulty == DifficultyHard
}

// Question is one free-text quiz question with its expected answer.
type Question struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

type document struct {
	Languages []Language            `json:"languages"`
	Quizzes   map[string][]Question `json:"quizzes"`
}
