package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lingoquest/lingo/internal/app"
	"github.com/lingoquest/lingo/internal/llm"
	"github.com/lingoquest/lingo/internal/logger"
	"github.com/lingoquest/lingo/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI at route.
func runApp(cmd *cobra.Command, route string, splash bool) error {
	ctx := cmd.Context()

	log, err := logger.ForTUI(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Store:        st,
		Logger:       log,
		InitialRoute: route,
		Splash:       splash,
	}

	svc, err := newTutor(cmd, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Tutor not configured:", err)
		fmt.Fprintln(os.Stderr, "Answer explanations will be unavailable.")
	} else if svc != nil {
		opts.Tutor = svc
	}

	log.Info("starting tui", zap.String("route", route), zap.Bool("tutor", opts.Tutor != nil))
	return app.Run(ctx, opts)
}

// newTutor builds the tutor from configuration. It returns nil, nil when
// no provider is configured at all.
func newTutor(cmd *cobra.Command, log *zap.Logger) (*tutor.Service, error) {
	llmCfg := cfg.LLM()
	if !llmCfg.Enabled() {
		return nil, nil
	}
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, log)
	if err != nil {
		return nil, err
	}
	return tutor.NewService(provider, tutor.DefaultConfig()), nil
}
