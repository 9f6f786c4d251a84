package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/catalog"
)

func (h *Handler) handleCallback(_ context.Context, cb *tgbotapi.CallbackQuery) {
	defer h.answerCallback(cb.ID)

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	lang, ok := catalog.Lookup(data.param(0))
	if !ok {
		h.logger.Debug("callback for unknown language", zap.String("data", cb.Data))
		h.send(newHTMLMessage(chatID, msgExpired))
		return
	}

	switch data.Action {
	case actionCard:
		h.editCard(cb, renderCardBack(*lang), buildBackFaceKeyboard(lang.Name))
	case actionBack:
		h.editCard(cb, renderCardFront(*lang), buildCardsKeyboard(catalog.Languages()))
	case actionDetails:
		h.send(newHTMLMessage(chatID, renderDetails(*lang)))
	case actionLearn:
		h.startQuiz(chatID, lang.Name)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
	}
}

// editCard rewrites the card message in place, the chat equivalent of a flip.
func (h *Handler) editCard(cb *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID, text, kb)
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(edit)
}

// answerCallback removes the client's loading indicator.
func (h *Handler) answerCallback(id string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, "")); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
