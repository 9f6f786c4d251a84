package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lingoquest/lingo/internal/ui/theme"
)

const cardWidth = 26

// ClickTarget is the innermost element a click landed on.
type ClickTarget int

const (
	TargetCard ClickTarget = iota
	TargetLearnMore
)

// ClickEvent is delivered to the innermost target first and then bubbles to
// the card unless a handler stops it.
type ClickEvent struct {
	Target  ClickTarget
	stopped bool
}

// StopPropagation keeps the event from reaching enclosing elements.
func (e *ClickEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped.
func (e *ClickEvent) Stopped() bool {
	return e.stopped
}

// Card is a two-faced card. The back face is produced lazily by Back the
// first time the card is flipped and reused afterwards.
type Card struct {
	Title string
	Blurb string

	// Back renders the back face. Called at most once.
	Back func() string

	// OnLearnMore runs when the nested Learn More control is clicked.
	OnLearnMore func() tea.Cmd

	flipped   bool
	populated bool
	backFace  string
	backCalls int
}

// NewCard creates a card showing its front face.
func NewCard(title, blurb string, back func() string, onLearnMore func() tea.Cmd) *Card {
	return &Card{
		Title:       title,
		Blurb:       blurb,
		Back:        back,
		OnLearnMore: onLearnMore,
	}
}

// Click dispatches a click on target. A click on Learn More is handled by
// the button and stops there, so the card does not flip.
func (c *Card) Click(target ClickTarget) tea.Cmd {
	ev := &ClickEvent{Target: target}

	var cmd tea.Cmd
	if target == TargetLearnMore {
		cmd = c.handleLearnMore(ev)
	}
	if !ev.Stopped() {
		c.toggle()
	}
	return cmd
}

func (c *Card) handleLearnMore(ev *ClickEvent) tea.Cmd {
	ev.StopPropagation()
	if c.OnLearnMore == nil {
		return nil
	}
	return c.OnLearnMore()
}

func (c *Card) toggle() {
	c.flipped = !c.flipped
	if c.flipped && !c.populated {
		if c.Back != nil {
			c.backFace = c.Back()
		}
		c.backCalls++
		c.populated = true
	}
}

// Flipped reports whether the back face is showing.
func (c *Card) Flipped() bool {
	return c.flipped
}

// Populations returns how many times the back face has been built.
func (c *Card) Populations() int {
	return c.backCalls
}

// BackFace returns the populated back face, or "" before the first flip.
func (c *Card) BackFace() string {
	return c.backFace
}

// View renders the visible face. selected highlights the border.
func (c *Card) View(selected bool) string {
	style := theme.Card.Width(cardWidth)
	if selected {
		style = style.BorderForeground(theme.Primary)
	}

	if c.flipped {
		return style.Render(c.backFace)
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Title)
	blurb := lipgloss.NewStyle().Foreground(theme.Text).Width(cardWidth - 4).Render(c.Blurb)
	button := theme.ButtonInactive.Render("Learn More")
	if selected {
		button = theme.ButtonActive.Render("Learn More")
	}
	return style.Render(strings.Join([]string{title, "", blurb, "", button}, "\n"))
}

// CardContainer holds the rendered cards of a page.
type CardContainer struct {
	cards    []*Card
	Selected int
}

// NewCardContainer returns an empty container.
func NewCardContainer() *CardContainer {
	return &CardContainer{}
}

// Clear removes every card.
func (cc *CardContainer) Clear() {
	cc.cards = nil
	cc.Selected = 0
}

// Append adds a card at the end.
func (cc *CardContainer) Append(c *Card) {
	cc.cards = append(cc.cards, c)
}

// Len returns the number of cards.
func (cc *CardContainer) Len() int {
	return len(cc.cards)
}

// Card returns the card at i, or nil when out of range.
func (cc *CardContainer) Card(i int) *Card {
	if i < 0 || i >= len(cc.cards) {
		return nil
	}
	return cc.cards[i]
}

// Current returns the selected card, or nil when empty.
func (cc *CardContainer) Current() *Card {
	return cc.Card(cc.Selected)
}

// Move shifts the selection by delta, clamped to the container.
func (cc *CardContainer) Move(delta int) {
	if len(cc.cards) == 0 {
		return
	}
	cc.Selected += delta
	if cc.Selected < 0 {
		cc.Selected = 0
	}
	if cc.Selected >= len(cc.cards) {
		cc.Selected = len(cc.cards) - 1
	}
}

// View lays the cards out side by side, wrapping onto a new row when they
// do not fit in width.
func (cc *CardContainer) View(width int) string {
	if len(cc.cards) == 0 {
		return ""
	}
	perRow := width / (cardWidth + 6)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for i, c := range cc.cards {
		row = append(row, c.View(i == cc.Selected), "  ")
		if len(row)/2 == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
