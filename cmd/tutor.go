package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/logger"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Inspect the answer-explanation tutor",
}

var tutorCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a sample request to the configured LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(cfg, logger.Stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		llmCfg := cfg.LLM()
		svc, err := newTutor(cmd, log)
		if err != nil {
			return fmt.Errorf("build tutor: %w", err)
		}
		if svc == nil {
			return errors.New("no LLM provider configured (set LINGO_LLM_PROVIDER or a vendor API key)")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), llmCfg.Timeout)
		defer cancel()

		fmt.Printf("Checking %s provider...\n", llmCfg.Provider)
		if err := svc.Check(ctx); err != nil {
			log.Debug("tutor check failed", zap.Error(err))
			return fmt.Errorf("tutor check: %w", err)
		}
		fmt.Println("Tutor is working.")
		return nil
	},
}

func init() {
	tutorCmd.AddCommand(tutorCheckCmd)
}
