package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/store"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Recorder persists finished quizzes.
type Recorder interface {
	Record(ctx context.Context, a *store.Attempt) error
}

type Handler struct {
	bot      Bot
	logger   *zap.Logger
	recorder Recorder

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewHandler creates the update handler. recorder may be nil.
func NewHandler(bot Bot, logger *zap.Logger, recorder Recorder) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		bot:      bot,
		logger:   logger.Named("telegram"),
		recorder: recorder,
		sessions: make(map[int64]*session),
	}
}

// Commands is the command menu registered with Telegram.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Show the language cards"},
		{Command: "quiz", Description: "Start a quiz (usage: /quiz Spanish)"},
		{Command: "cancel", Description: "Abandon the current quiz"},
		{Command: "help", Description: "How this bot works"},
	}
}

// Run processes updates one at a time until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.handleStart(chatID)
		case "quiz":
			h.handleQuizCommand(chatID, update.Message.CommandArguments())
		case "cancel":
			h.handleCancel(chatID)
		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))
		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}
		return
	}

	h.handleAnswer(ctx, chatID, update.Message.Text)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
