package home

import (
	"net/url"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/catalog"
	"github.com/lingoquest/lingo/internal/router"
	"github.com/lingoquest/lingo/internal/screen"
	"github.com/lingoquest/lingo/internal/ui/components"
	"github.com/lingoquest/lingo/internal/ui/layout"
	"github.com/lingoquest/lingo/internal/ui/theme"
)

// HomeScreen is the index page: one card per catalog language plus the
// detail modal.
type HomeScreen struct {
	cards  *components.CardContainer
	modal  *components.Modal
	logger *zap.Logger

	// selected is the language whose card was clicked last; nil until then.
	selected *catalog.Language
	langs    []catalog.Language
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.OverlayProvider = (*HomeScreen)(nil)
)

// New creates the home screen and populates its cards from the catalog.
func New(logger *zap.Logger) *HomeScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HomeScreen{
		cards:  components.NewCardContainer(),
		modal:  components.NewModal(),
		logger: logger,
		langs:  catalog.Languages(),
	}

	n := PopulateCards(h.cards, h.langs)
	h.logger.Info("populated language cards", zap.Int("count", n))
	return h
}

// LanguageURL is the route of the quiz page for name.
func LanguageURL(name string) string {
	return router.LanguageRoute + "?" + url.Values{"lang": {name}}.Encode()
}

// PopulateCards replaces the contents of container with one card per
// language and returns how many were created. A nil container means the
// page has no card area; nothing is created.
func PopulateCards(container *components.CardContainer, langs []catalog.Language) int {
	if container == nil {
		return 0
	}
	container.Clear()
	for _, lang := range langs {
		container.Append(components.NewCard(
			lang.Name,
			Blurb(lang),
			func() string { return BackFace(lang) },
			func() tea.Cmd { return router.Navigate(LanguageURL(lang.Name)) },
		))
	}
	return container.Len()
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	// The open modal swallows everything except its close control.
	if h.modal.Active() {
		switch kmsg.String() {
		case "x", "esc":
			h.modal.Dismiss()
		}
		return h, nil
	}

	switch kmsg.String() {
	case "left":
		h.cards.Move(-1)
	case "right":
		h.cards.Move(1)
	case "enter", "space":
		return h, h.click(components.TargetCard)
	case "l":
		return h, h.click(components.TargetLearnMore)
	case "d":
		DisplayDetails(h.modal, h.selected)
	}
	return h, nil
}

func (h *HomeScreen) click(target components.ClickTarget) tea.Cmd {
	card := h.cards.Current()
	if card == nil {
		return nil
	}
	if target == components.TargetCard {
		lang := h.langs[h.cards.Selected]
		h.selected = &lang
	}
	return card.Click(target)
}

func (h *HomeScreen) View(width, height int) string {
	if h.modal.Active() {
		return h.modal.View(width, height)
	}

	heading := theme.Title.Width(width).Render("Choose a language")
	sub := theme.Subtitle.Width(width).Render("Flip a card to peek, Learn More to take its quiz")
	cards := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.cards.View(width))

	content := lipgloss.JoinVertical(lipgloss.Left, heading, sub, "", cards)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.modal.Active() {
		return []layout.KeyHint{
			{Key: "x", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Select"},
		{Key: "Enter", Description: "Flip"},
		{Key: "l", Description: "Learn More"},
		{Key: "d", Description: "Details"},
	}
}

// OverlayActive implements screen.OverlayProvider.
func (h *HomeScreen) OverlayActive() bool {
	return h.modal.Active()
}

// Modal exposes the detail modal.
func (h *HomeScreen) Modal() *components.Modal {
	return h.modal
}

// Cards exposes the card container.
func (h *HomeScreen) Cards() *components.CardContainer {
	return h.cards
}
