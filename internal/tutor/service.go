package tutor

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lingoquest/lingo/internal/llm"
	"github.com/lingoquest/lingo/internal/quiz"
)

// ErrNothingToExplain is returned when Explain gets no misses.
var ErrNothingToExplain = errors.New("no missed questions to explain")

// Explanation is the tutor's note on one missed question.
type Explanation struct {
	Index       int    `json:"index"`
	Explanation string `json:"explanation"`
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.3,
	}
}

// Service explains missed quiz questions with an LLM.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor backed by provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Explanations []Explanation `json:"explanations"`
}

// Explain returns one explanation per miss, ordered by question index.
// Entries whose index does not match a miss are dropped.
func (s *Service) Explain(ctx context.Context, language string, misses []quiz.Miss) ([]Explanation, error) {
	return s.explain(llm.WithPurpose(ctx, llm.PurposeExplain), language, misses)
}

func (s *Service) explain(ctx context.Context, language string, misses []quiz.Miss) ([]Explanation, error) {
	if len(misses) == 0 {
		return nil, ErrNothingToExplain
	}

	req := llm.SingleTurn(systemPrompt, buildUserMessage(language, misses), ExplanationSchema, s.cfg.MaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutor explain: %w", err)
	}

	var out explanationOutput
	if err := llm.Decode(resp, &out); err != nil {
		return nil, fmt.Errorf("parse tutor response: %w", err)
	}

	missed := make(map[int]bool, len(misses))
	for _, m := range misses {
		missed[m.Index] = true
	}

	explanations := make([]Explanation, 0, len(out.Explanations))
	seen := make(map[int]bool)
	for _, e := range out.Explanations {
		if !missed[e.Index] || seen[e.Index] {
			continue
		}
		seen[e.Index] = true
		explanations = append(explanations, e)
	}
	sort.Slice(explanations, func(i, j int) bool {
		return explanations[i].Index < explanations[j].Index
	})
	return explanations, nil
}

// Check asks about one sample miss and reports whether the tutor answers.
func (s *Service) Check(ctx context.Context) error {
	sample := []quiz.Miss{{
		Index:    0,
		Prompt:   "How do you say 'hello' in Spanish?",
		Expected: "Hola",
		Given:    "Ola",
	}}
	out, err := s.explain(llm.WithPurpose(ctx, llm.PurposeCheck), "Spanish", sample)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return errors.New("tutor returned no explanations")
	}
	return nil
}
