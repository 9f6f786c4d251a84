package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/lingoquest/lingo/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// OverlayProvider is an optional interface for screens that can show an
// overlay. While OverlayActive is true the app hands Esc to the screen
// instead of navigating back.
type OverlayProvider interface {
	OverlayActive() bool
}

// Addressed is implemented by messages that belong to one screen, such as
// the result of a command it started. The router delivers them to that
// screen wherever it sits on the stack and drops them once it is gone.
type Addressed interface {
	Recipient() Screen
}
