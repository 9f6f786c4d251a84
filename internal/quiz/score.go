package quiz

import (
	"fmt"
	"strings"

	"github.com/lingoquest/lingo/internal/catalog"
)

// Miss records one question answered incorrectly.
type Miss struct {
	Index    int
	Prompt   string
	Expected string
	Given    string
}

// Result is the outcome of scoring one submission.
type Result struct {
	Correct int
	Total   int
	Misses  []Miss
}

// String renders the result the way the quiz page shows it.
func (r Result) String() string {
	return fmt.Sprintf("Score: %d / %d", r.Correct, r.Total)
}

// Perfect reports whether every question was answered correctly.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.Correct == r.Total
}

// Normalize prepares an answer for comparison: surrounding whitespace is
// trimmed and letters are lower-cased. Nothing else is folded.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether a submitted answer equals the expected one after
// normalization. There is no partial credit and no fuzzy matching.
func Matches(given, expected string) bool {
	return Normalize(given) == Normalize(expected)
}

// Score pairs answers with questions by index and counts exact matches.
// A missing answer counts as wrong.
func Score(questions []catalog.Question, answers []string) Result {
	res := Result{Total: len(questions)}
	for i, q := range questions {
		var given string
		if i < len(answers) {
			given = answers[i]
		}
		if Matches(given, q.Answer) {
			res.Correct++
			continue
		}
		res.Misses = append(res.Misses, Miss{
			Index:    i,
			Prompt:   q.Prompt,
			Expected: q.Answer,
			Given:    given,
		})
	}
	return res
}
