package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/ui/theme"
)

// ScoreBar draws a horizontal bar for a quiz score.
type ScoreBar struct {
	Correct int
	Total   int
	Width   int
}

// NewScoreBar creates a bar for correct out of total.
func NewScoreBar(correct, total, width int) ScoreBar {
	return ScoreBar{Correct: correct, Total: total, Width: width}
}

// Fraction returns the filled share in [0, 1].
func (s ScoreBar) Fraction() float64 {
	if s.Total <= 0 {
		return 0
	}
	f := float64(s.Correct) / float64(s.Total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// View renders the bar followed by the count.
func (s ScoreBar) View() string {
	suffix := fmt.Sprintf("  %d/%d", s.Correct, s.Total)

	barWidth := s.Width - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(float64(barWidth) * s.Fraction())

	fill := theme.Secondary
	if s.Total > 0 && s.Correct == s.Total {
		fill = theme.Success
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
