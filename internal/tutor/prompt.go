package tutor

import (
	"fmt"
	"strings"

	"github.com/lingoquest/lingo/internal/quiz"
)

const systemPrompt = `You are a friendly language tutor. A learner just took a short vocabulary quiz and missed some questions. Explain each expected answer briefly and kindly.`

func buildUserMessage(language string, misses []quiz.Miss) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n\nMissed questions:\n", language)
	for _, m := range misses {
		given := m.Given
		if strings.TrimSpace(given) == "" {
			given = "(no answer)"
		}
		fmt.Fprintf(&b, "- index %d: %q\n  expected: %q\n  learner wrote: %q\n", m.Index, m.Prompt, m.Expected, given)
	}

	b.WriteString(`
Instructions:
1. Return one explanation per missed question, using the index shown above.
2. Keep each explanation to one or two sentences.
3. If the learner's answer was close (a typo or an accent), say so.
4. Plain text only. No markdown.`)

	return b.String()
}
