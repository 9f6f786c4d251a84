package telegram

import (
	"context"
	"errors"
	"sync"
	"time"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	quizscreen "github.com/lingoquest/lingo/internal/screens/quiz"
	"github.com/lingoquest/lingo/internal/store"
)

const chatID int64 = 42

type fakeBot struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update, 16)}
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeBot) StopReceivingUpdates() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

// lastText returns the text of the most recent message or edit.
func (f *fakeBot) lastText(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	switch c := f.sent[len(f.sent)-1].(type) {
	case tgbotapi.MessageConfig:
		return c.Text
	case tgbotapi.EditMessageTextConfig:
		return c.Text
	}
	t.Fatalf("unexpected chattable %T", f.sent[len(f.sent)-1])
	return ""
}

type fakeRecorder struct {
	attempts []store.Attempt
	err      error
}

func (r *fakeRecorder) Record(_ context.Context, a *store.Attempt) error {
	r.attempts = append(r.attempts, *a)
	return r.err
}

func command(text string) tgbotapi.Update {
	n := len(text)
	for i, c := range text {
		if c == ' ' {
			n = i
			break
		}
	}
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: n}},
	}}
}

func text(s string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}, Text: s}}
}

func callback(data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: 7},
		Data:    data,
		Message: &tgbotapi.Message{MessageID: 99, Chat: &tgbotapi.Chat{ID: chatID}},
	}}
}

var spanishAnswers = []string{"Hola", "Buenos Dias", "Senorita", "Adonde esta el bano?", "Perro"}

func TestStartListsCards(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)

	h.handleUpdate(t.Context(), command("/start"))

	require.Len(t, bot.sent, 1)
	msg := bot.sent[0].(tgbotapi.MessageConfig)
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, "card:Spanish", *kb.InlineKeyboard[0][0].CallbackData)
}

func TestCardCallbackShowsBackFace(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)

	h.handleUpdate(t.Context(), callback("card:German"))

	edit, ok := bot.sent[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 99, edit.MessageID)
	assert.Contains(t, edit.Text, "German\nDifficulty:")
	require.Len(t, bot.requests, 1, "callback must be answered")

	h.handleUpdate(t.Context(), callback("details:German"))
	assert.Contains(t, bot.lastText(t), "Fun Fact:")

	h.handleUpdate(t.Context(), callback("back:German"))
	assert.Contains(t, bot.lastText(t), "new paths to the German Language")
}

func TestUnknownLanguageCallback(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)

	h.handleUpdate(t.Context(), callback("card:Klingon"))
	assert.Equal(t, msgExpired, bot.lastText(t))
	assert.Len(t, bot.requests, 1)
}

func TestQuizFlowRecordsAttempt(t *testing.T) {
	bot := newFakeBot()
	rec := &fakeRecorder{}
	h := NewHandler(bot, nil, rec)

	h.handleUpdate(t.Context(), callback("learn:Spanish"))
	assert.Contains(t, bot.lastText(t), "(1/5)")

	for i, a := range spanishAnswers {
		if i == 0 {
			a = "  hola "
		}
		if i == 4 {
			a = "gato"
		}
		h.handleUpdate(t.Context(), text(a))
	}

	assert.Contains(t, bot.lastText(t), "Score: 4 / 5")
	assert.Contains(t, bot.lastText(t), "Perro")
	require.Len(t, rec.attempts, 1)
	assert.Equal(t, store.Attempt{Language: "Spanish", Score: 4, Total: 5, Source: store.SourceTelegram}, rec.attempts[0])

	h.handleUpdate(t.Context(), text("another"))
	assert.Equal(t, msgNoQuiz, bot.lastText(t))
}

func TestQuizCommand(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)

	h.handleUpdate(t.Context(), command("/quiz"))
	assert.Equal(t, msgQuizUsage, bot.lastText(t))

	h.handleUpdate(t.Context(), command("/quiz French"))
	assert.Equal(t, quizscreen.NoLanguageMessage, bot.lastText(t))
	assert.Empty(t, h.sessions)

	h.handleUpdate(t.Context(), command("/quiz Russian"))
	assert.Contains(t, bot.lastText(t), "Quiz for Russian")
	assert.Len(t, h.sessions, 1)

	h.handleUpdate(t.Context(), command("/cancel"))
	assert.Equal(t, msgCancelled, bot.lastText(t))
	h.handleUpdate(t.Context(), command("/cancel"))
	assert.Equal(t, msgNothingToCancel, bot.lastText(t))
}

func TestRecordFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	bot := newFakeBot()
	h := NewHandler(bot, zap.New(core), &fakeRecorder{err: errors.New("locked")})

	h.startQuiz(chatID, "Spanish")
	for _, a := range spanishAnswers {
		h.handleAnswer(t.Context(), chatID, a)
	}

	assert.Contains(t, bot.lastText(t), "Score: 5 / 5")
	assert.Equal(t, 1, logs.FilterMessage("record quiz attempt").Len())
}

func TestUnknownCommand(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)
	h.handleUpdate(t.Context(), command("/dance"))
	assert.Equal(t, msgUnknownCommand, bot.lastText(t))
}

func TestRunStopsOnCancel(t *testing.T) {
	bot := newFakeBot()
	h := NewHandler(bot, nil, nil)
	bot.updates <- command("/start")

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	require.Eventually(t, func() bool {
		bot.mu.Lock()
		defer bot.mu.Unlock()
		return len(bot.sent) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.True(t, bot.stopped)
}

func TestCallbackData(t *testing.T) {
	cd := decodeCallback(buildLanguageCallback(actionLearn, "Old Norse"))
	assert.Equal(t, actionLearn, cd.Action)
	assert.Equal(t, "Old Norse", cd.param(0))
	assert.Empty(t, cd.param(1))

	assert.Equal(t, "back", callbackData{Action: actionBack}.encode())
}
