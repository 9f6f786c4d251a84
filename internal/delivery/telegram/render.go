package telegram

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lingoquest/lingo/internal/catalog"
	"github.com/lingoquest/lingo/internal/quiz"
	"github.com/lingoquest/lingo/internal/screens/home"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func renderCardFront(lang catalog.Language) string {
	return fmt.Sprintf("<b>%s</b>\n%s", html.EscapeString(lang.Name), html.EscapeString(home.Blurb(lang)))
}

func renderCardBack(lang catalog.Language) string {
	return html.EscapeString(home.BackFace(lang))
}

func renderDetails(lang catalog.Language) string {
	return html.EscapeString(home.DetailText(lang))
}

func renderQuestion(language string, q catalog.Question, index, total int) string {
	return fmt.Sprintf("<b>Quiz for %s</b> (%d/%d)\n\n%s",
		html.EscapeString(language), index+1, total, html.EscapeString(q.Prompt))
}

func renderResult(res quiz.Result) string {
	text := "<b>" + res.String() + "</b>"
	for _, m := range res.Misses {
		text += fmt.Sprintf("\n%d. expected <i>%s</i>", m.Index+1, html.EscapeString(m.Expected))
	}
	return text
}
