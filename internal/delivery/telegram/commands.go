package telegram

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/catalog"
	quizscreen "github.com/lingoquest/lingo/internal/screens/quiz"
	"github.com/lingoquest/lingo/internal/store"
)

func (h *Handler) handleStart(chatID int64) {
	msg := newHTMLMessage(chatID, msgWelcome)
	msg.ReplyMarkup = buildCardsKeyboard(catalog.Languages())
	h.send(msg)
}

func (h *Handler) handleQuizCommand(chatID int64, args string) {
	language := strings.TrimSpace(args)
	if language == "" {
		h.send(newHTMLMessage(chatID, msgQuizUsage))
		return
	}
	h.startQuiz(chatID, language)
}

// startQuiz replaces any quiz in progress for chatID. An unknown language
// gets the fallback message and no session.
func (h *Handler) startQuiz(chatID int64, language string) {
	s := newSession(language)
	if s == nil {
		h.send(newHTMLMessage(chatID, quizscreen.NoLanguageMessage))
		return
	}

	h.mu.Lock()
	h.sessions[chatID] = s
	h.mu.Unlock()

	h.logger.Info("quiz started", zap.Int64("chat_id", chatID), zap.String("language", language))
	q, i := s.current()
	h.send(newHTMLMessage(chatID, renderQuestion(language, q, i, len(s.questions))))
}

func (h *Handler) handleCancel(chatID int64) {
	h.mu.Lock()
	_, ok := h.sessions[chatID]
	delete(h.sessions, chatID)
	h.mu.Unlock()

	if !ok {
		h.send(newHTMLMessage(chatID, msgNothingToCancel))
		return
	}
	h.send(newHTMLMessage(chatID, msgCancelled))
}

// handleAnswer treats text as the answer to the current question.
func (h *Handler) handleAnswer(ctx context.Context, chatID int64, text string) {
	h.mu.Lock()
	s, ok := h.sessions[chatID]
	if !ok {
		h.mu.Unlock()
		h.send(newHTMLMessage(chatID, msgNoQuiz))
		return
	}
	done := s.answer(text)
	if done {
		delete(h.sessions, chatID)
	}
	h.mu.Unlock()

	if !done {
		q, i := s.current()
		h.send(newHTMLMessage(chatID, renderQuestion(s.language, q, i, len(s.questions))))
		return
	}

	res := s.result()
	h.send(newHTMLMessage(chatID, renderResult(res)))
	h.record(ctx, chatID, s.language, res.Correct, res.Total)
}

func (h *Handler) record(ctx context.Context, chatID int64, language string, correct, total int) {
	if h.recorder == nil {
		return
	}
	err := h.recorder.Record(ctx, &store.Attempt{
		Language: language,
		Score:    correct,
		Total:    total,
		Source:   store.SourceTelegram,
	})
	if err != nil {
		h.logger.Warn("record quiz attempt",
			zap.Int64("chat_id", chatID),
			zap.String("language", language),
			zap.Error(err),
		)
	}
}
