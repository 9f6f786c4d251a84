package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/router"
	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/ui/components"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

var faq = []string{
	"Pick a card on the home page and press Enter to flip it.",
	"Press l on a card to open its quiz, d to see the details of the last card you flipped.",
	"Answers are compared ignoring case and surrounding spaces.",
	"Ctrl+T switches between light and dark mode on every page.",
}

// HelpScreen is the help page.
type HelpScreen struct {
	menu components.Menu
}

var (
	_ screen.Screen          = (*HelpScreen)(nil)
	_ screen.KeyHintProvider = (*HelpScreen)(nil)
)

// New creates the help page. support controls whether the "Contact
// support" entry is offered.
func New(support bool) *HelpScreen {
	var items []components.MenuItem
	if support {
		items = append(items, components.MenuItem{
			Label:  "Contact support",
			Action: func() tea.Cmd { return router.Navigate(router.ContactRoute) },
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "Language maps",
			Action: func() tea.Cmd { return router.Navigate(router.MapsRoute) },
		},
		components.MenuItem{
			Label:  "Quiz history",
			Action: func() tea.Cmd { return router.Navigate(router.HistoryRoute) },
		},
		components.MenuItem{
			Label:  "Back to languages",
			Action: func() tea.Cmd { return router.NavigateReset(router.IndexRoute) },
		},
	)
	return &HelpScreen{menu: components.NewMenu(items)}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, line := range faq {
		b.WriteString(theme.Body.Render("• " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(h.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (h *HelpScreen) Title() string {
	return "Help"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
