package cmd

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/delivery/telegram"
	"github.com/lingoquest/lingo/internal/logger"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve the cards and quizzes over Telegram",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := cfg.TelegramToken()
		if err != nil {
			return err
		}

		log, err := logger.New(cfg, logger.Stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		bot, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			return fmt.Errorf("connect to telegram: %w", err)
		}
		bot.Debug = cfg.Telegram.Debug
		log.Info("authorized", zap.String("account", bot.Self.UserName))

		if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
			log.Warn("failed to set bot commands", zap.Error(err))
		}

		handler := telegram.NewHandler(bot, log, st.Attempts())
		if err := handler.Run(cmd.Context()); err != nil && cmd.Context().Err() == nil {
			return err
		}
		log.Info("shutdown signal received")
		return nil
	},
}
