package components

import (
	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/ui/theme"
)

// Modal is an overlay dialog. It is opened by whoever sets its body and
// closed only through its dismiss control.
type Modal struct {
	body   string
	active bool
}

// NewModal returns a closed modal.
func NewModal() *Modal {
	return &Modal{}
}

// SetBody replaces the modal content without changing its state.
func (m *Modal) SetBody(body string) {
	m.body = body
}

// Open makes the modal visible.
func (m *Modal) Open() {
	m.active = true
}

// Dismiss closes the modal. This is the close control's handler.
func (m *Modal) Dismiss() {
	m.active = false
}

// Active reports whether the modal is open.
func (m *Modal) Active() bool {
	return m.active
}

// Body returns the current content.
func (m *Modal) Body() string {
	return m.body
}

// View renders the modal with its close hint, centered in width x height.
func (m *Modal) View(width, height int) string {
	closeHint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("[x] close")

	boxWidth := width - 8
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(boxWidth-8, lipgloss.Right, closeHint),
		lipgloss.NewStyle().Foreground(theme.Text).Width(boxWidth-8).Render(m.body),
	)
	box := theme.Modal.Width(boxWidth).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
