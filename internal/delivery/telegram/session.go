package telegram

import (
	"github.com/lingoquest/lingo/internal/catalog"
	"github.com/lingoquest/lingo/internal/quiz"
)

// session is one chat's quiz in progress.
type session struct {
	language  string
	questions []catalog.Question
	answers   []string
}

// newSession returns nil when language has no quiz.
func newSession(language string) *session {
	qs, ok := catalog.Quiz(language)
	if !ok || len(qs) == 0 {
		return nil
	}
	return &session{language: language, questions: qs}
}

// current returns the question awaiting an answer.
func (s *session) current() (catalog.Question, int) {
	i := len(s.answers)
	return s.questions[i], i
}

// answer stores text for the current question and reports whether the
// quiz is complete.
func (s *session) answer(text string) bool {
	s.answers = append(s.answers, text)
	return s.done()
}

func (s *session) done() bool {
	return len(s.answers) >= len(s.questions)
}

func (s *session) result() quiz.Result {
	return quiz.Score(s.questions, s.answers)
}
