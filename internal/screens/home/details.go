package home

import (
	"fmt"
	"strings"

	"github.com/lingoquest/lingo/internal/catalog"
	"github.com/lingoquest/lingo/internal/ui/components"
)

const (
	noSelectionPrompt = "Please select a language to learn more."
	hardNote          = "This language is challenging but rewarding!"
	approachableNote  = "This language is approachable for beginners!"
)

// DisplayDetails fills m with the details of lang and opens it. With no
// selection it opens the modal with a prompt instead and returns false.
func DisplayDetails(m *components.Modal, lang *catalog.Language) bool {
	if m == nil {
		return false
	}
	if lang == nil {
		m.SetBody(noSelectionPrompt)
		m.Open()
		return false
	}

	m.SetBody(DetailText(*lang))
	m.Open()
	return true
}

// DetailText renders the detail body for lang.
func DetailText(lang catalog.Language) string {
	note := approachableNote
	if lang.IsHard() {
		note = hardNote
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", lang.Name)
	fmt.Fprintf(&b, "Difficulty: %s\n", lang.Difficulty)
	fmt.Fprintf(&b, "Speakers: %s\n", lang.Speakers)
	fmt.Fprintf(&b, "Fun Fact: %s\n\n", lang.FunFact)
	b.WriteString(note)
	return b.String()
}

// BackFace renders the back of a language card.
func BackFace(lang catalog.Language) string {
	return fmt.Sprintf("%s\nDifficulty: %s\n\nClick again to return", lang.Name, lang.Difficulty)
}

// Blurb is the front-face line of a language card.
func Blurb(lang catalog.Language) string {
	return fmt.Sprintf("This card will open up new paths to the %s Language", lang.Name)
}
