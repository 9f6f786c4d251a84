package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lingoquest/lingo/internal/catalog"
)

// buildCardsKeyboard builds one card button per language.
func buildCardsKeyboard(langs []catalog.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, l := range langs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🃏 "+l.Name, buildLanguageCallback(actionCard, l.Name)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildBackFaceKeyboard builds the controls under a flipped card.
func buildBackFaceKeyboard(language string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Details", buildLanguageCallback(actionDetails, language)),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Learn More", buildLanguageCallback(actionLearn, language)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("↩️ Flip back", buildLanguageCallback(actionBack, language)),
		),
	)
}
