package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/catalog"
	score "github.com/lingoquest/lingo/internal/quiz"
	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/store"
	"github.com/lingoquest/lingo/internal/tutor"
	"github.com/lingoquest/lingo/internal/ui/components"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

// NoLanguageMessage is shown when the page has no usable lang parameter.
const NoLanguageMessage = "No language selected. Go back to Home and choose a card."

const explainTimeout = 30 * time.Second

// Recorder persists quiz attempts.
type Recorder interface {
	Record(ctx context.Context, a *store.Attempt) error
}

// Explainer explains missed questions.
type Explainer interface {
	Explain(ctx context.Context, language string, misses []score.Miss) ([]tutor.Explanation, error)
}

type attemptRecordedMsg struct {
	from *QuizScreen
	err  error
}

func (m attemptRecordedMsg) Recipient() screen.Screen { return m.from }

type explanationsMsg struct {
	from  *QuizScreen
	items []tutor.Explanation
	err   error
}

func (m explanationsMsg) Recipient() screen.Screen { return m.from }

// QuizScreen renders the quiz for one language.
type QuizScreen struct {
	language  string
	questions []catalog.Question
	inputs    []components.TextInput

	// focus indexes inputs; len(inputs) is the Submit control.
	focus int

	result  *score.Result
	submits int

	recorder Recorder
	tutor    Explainer
	logger   *zap.Logger

	explaining   bool
	explanations []tutor.Explanation
	tutorNote    string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates the quiz page for language. An unknown or empty language
// yields a page that only shows NoLanguageMessage. recorder and explainer may
// be nil.
func New(language string, recorder Recorder, explainer Explainer, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuizScreen{
		language: language,
		recorder: recorder,
		tutor:    explainer,
		logger:   logger,
	}

	questions, ok := catalog.Quiz(language)
	if !ok {
		return s
	}
	s.questions = questions
	s.inputs = make([]components.TextInput, len(questions))
	for i, q := range questions {
		s.inputs[i] = components.NewTextInput(fmt.Sprintf("%d. %s", i+1, q.Prompt), "Your answer", false, 64)
	}
	return s
}

// HasQuiz reports whether the page rendered a quiz.
func (s *QuizScreen) HasQuiz() bool {
	return s.questions != nil
}

// Result returns the result of the last submit, or nil before the first.
func (s *QuizScreen) Result() *score.Result {
	return s.result
}

func (s *QuizScreen) Init() tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	return s.setFocus(0)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptRecordedMsg:
		if msg.err != nil {
			s.logger.Warn("record quiz attempt", zap.String("language", s.language), zap.Error(msg.err))
		}
		return s, nil

	case explanationsMsg:
		s.explaining = false
		if msg.err != nil {
			s.logger.Warn("tutor explain", zap.String("language", s.language), zap.Error(msg.err))
			s.tutorNote = "The tutor is unavailable right now."
			return s, nil
		}
		s.explanations = msg.items
		s.tutorNote = ""
		return s, nil

	case tea.KeyMsg:
		if !s.HasQuiz() {
			return s, nil
		}
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "ctrl+s":
		return s, s.submit()
	case "ctrl+e":
		return s, s.explain()
	case "enter":
		if s.focus == len(s.inputs) {
			return s, s.submit()
		}
		return s, s.setFocus(s.focus + 1)
	}

	if s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = 0
	}
	if i > len(s.inputs) {
		i = len(s.inputs)
	}
	s.focus = i

	var cmd tea.Cmd
	for j := range s.inputs {
		if j == i {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

// Answers returns the current contents of every answer field.
func (s *QuizScreen) Answers() []string {
	answers := make([]string, len(s.inputs))
	for i, in := range s.inputs {
		answers[i] = in.Value()
	}
	return answers
}

// submit scores the current field contents. Every submit recomputes from
// scratch and records a new attempt.
func (s *QuizScreen) submit() tea.Cmd {
	res := score.Score(s.questions, s.Answers())
	s.result = &res
	s.submits++
	s.explanations = nil
	s.tutorNote = ""

	if s.recorder == nil {
		return nil
	}
	attempt := &store.Attempt{
		Language: s.language,
		Score:    res.Correct,
		Total:    res.Total,
		Source:   store.SourceTerminal,
	}
	recorder := s.recorder
	return func() tea.Msg {
		return attemptRecordedMsg{from: s, err: recorder.Record(context.Background(), attempt)}
	}
}

func (s *QuizScreen) explain() tea.Cmd {
	switch {
	case s.result == nil:
		s.tutorNote = "Submit your answers first."
		return nil
	case s.result.Perfect():
		s.tutorNote = "Nothing to explain, every answer is correct."
		return nil
	case s.tutor == nil:
		s.tutorNote = "No tutor is configured."
		return nil
	case s.explaining:
		return nil
	}

	s.explaining = true
	s.tutorNote = "Asking the tutor..."
	t, lang, misses := s.tutor, s.language, s.result.Misses
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		items, err := t.Explain(ctx, lang, misses)
		return explanationsMsg{from: s, items: items, err: err}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if !s.HasQuiz() {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(NoLanguageMessage)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz for " + s.language))
	b.WriteString("\n\n")

	for _, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	b.WriteString(components.NewButton("Submit", s.focus == len(s.inputs), nil).View())
	b.WriteString("\n\n")
	b.WriteString(s.resultView(width))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (s *QuizScreen) resultView(width int) string {
	if s.result == nil {
		return ""
	}

	style := theme.Incorrect
	if s.result.Perfect() {
		style = theme.Correct
	}
	barWidth := width - 12
	if barWidth > 40 {
		barWidth = 40
	}

	lines := []string{
		style.Render(s.result.String()),
		components.NewScoreBar(s.result.Correct, s.result.Total, barWidth).View(),
	}
	if s.tutorNote != "" {
		lines = append(lines, "", theme.Hint.Render(s.tutorNote))
	}
	for _, e := range s.explanations {
		prompt := ""
		if e.Index >= 0 && e.Index < len(s.questions) {
			prompt = s.questions[e.Index].Prompt
		}
		lines = append(lines, "", theme.Selected.Render(prompt), theme.Body.Render(e.Explanation))
	}
	return strings.Join(lines, "\n")
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if !s.HasQuiz() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "F1", Description: "Home"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Submit"},
	}
	if s.result != nil && !s.result.Perfect() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Submits returns how many times the quiz was submitted.
func (s *QuizScreen) Submits() int {
	return s.submits
}
