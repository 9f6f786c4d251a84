package maps

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/ui/components"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

// Stage is one CEFR proficiency level.
type Stage struct {
	Code        string
	Name        string
	Description string
}

// Stages lists the CEFR levels from A1 to C2.
var Stages = []Stage{
	{"A1", "Beginner", "Basic phrases, greetings, simple interactions."},
	{"A2", "Elementary", "Describe surroundings, handle simple tasks."},
	{"B1", "Intermediate", "Deal with most situations while traveling, describe experiences."},
	{"B2", "Upper Intermediate", "Understand main ideas of complex text, interact fluently."},
	{"C1", "Advanced", "Express ideas fluently, use language flexibly for social/professional purposes."},
	{"C2", "Proficiency", "Understand everything heard or read, express spontaneously with precision."},
}

// StagesText renders the modal body for the map preview.
func StagesText() string {
	var b strings.Builder
	b.WriteString("Language Learning Stages (CEFR Levels)\n\n")
	for _, s := range Stages {
		fmt.Fprintf(&b, "• %s (%s): %s\n", s.Code, s.Name, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// MapsScreen is the language-maps page.
type MapsScreen struct {
	modal   *components.Modal
	preview bool
}

var (
	_ screen.Screen          = (*MapsScreen)(nil)
	_ screen.KeyHintProvider = (*MapsScreen)(nil)
	_ screen.OverlayProvider = (*MapsScreen)(nil)
)

// New creates the language-maps page. preview controls whether the
// "Map preview" button is offered.
func New(preview bool) *MapsScreen {
	return &MapsScreen{
		modal:   components.NewModal(),
		preview: preview,
	}
}

func (m *MapsScreen) Init() tea.Cmd {
	return nil
}

func (m *MapsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.modal.Active() {
		switch kmsg.String() {
		case "x", "esc":
			m.modal.Dismiss()
		}
		return m, nil
	}

	switch kmsg.String() {
	case "enter", "space", "p":
		m.OpenPreview()
	}
	return m, nil
}

// OpenPreview fills the modal with the CEFR stages and opens it. Without
// the preview button it does nothing.
func (m *MapsScreen) OpenPreview() bool {
	if !m.preview {
		return false
	}
	m.modal.SetBody(StagesText())
	m.modal.Open()
	return true
}

// Modal exposes the page modal.
func (m *MapsScreen) Modal() *components.Modal {
	return m.modal
}

func (m *MapsScreen) OverlayActive() bool {
	return m.modal.Active()
}

func (m *MapsScreen) View(width, height int) string {
	if m.modal.Active() {
		return m.modal.View(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Language Maps"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Every language follows the same road from first words to fluency."))
	b.WriteString("\n\n")
	if m.preview {
		b.WriteString(components.NewButton("Map preview", true, nil).View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m *MapsScreen) Title() string {
	return "Language Maps"
}

// KeyHints implements screen.KeyHintProvider.
func (m *MapsScreen) KeyHints() []layout.KeyHint {
	if m.modal.Active() {
		return []layout.KeyHint{{Key: "x", Description: "Close"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Map preview"},
		{Key: "Esc", Description: "Back"},
	}
}
