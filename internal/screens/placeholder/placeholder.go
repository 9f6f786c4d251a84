package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

// NotFoundScreen is shown for routes the page controller does not know.
type NotFoundScreen struct {
	route string
}

var (
	_ screen.Screen          = (*NotFoundScreen)(nil)
	_ screen.KeyHintProvider = (*NotFoundScreen)(nil)
)

// NotFound creates the page for an unknown route.
func NotFound(route string) *NotFoundScreen {
	return &NotFoundScreen{route: route}
}

// Route returns the route that could not be resolved.
func (p *NotFoundScreen) Route() string {
	return p.route
}

func (p *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *NotFoundScreen) View(width, height int) string {
	msg := "╌╌ Page not found ╌╌\n\n"
	if p.route != "" {
		msg += "Nothing lives at \"" + p.route + "\".\n"
	}
	msg += "Press F1 to go back to the languages."

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

func (p *NotFoundScreen) Title() string {
	return "Not Found"
}

// KeyHints implements screen.KeyHintProvider.
func (p *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "F1", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}
