package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lingoquest/lingo/internal/config"
)

// Stderr is the Output value that keeps logs on the terminal.
const Stderr = "stderr"

// New builds the application logger: production JSON when cfg.Env is
// "production", development console output otherwise. output is a file
// path or Stderr; the TUI passes a file because it owns the terminal.
func New(cfg *config.Config, output string) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	if output != Stderr {
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{output}

	return zc.Build()
}

// DefaultFile returns $XDG_STATE_HOME/lingo/lingo.log, falling back to
// ~/.local/state.
func DefaultFile() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "lingo", "lingo.log"), nil
}

// ForTUI returns a logger writing to cfg.Log.File or DefaultFile.
func ForTUI(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.Log.File
	if path == "" {
		var err error
		if path, err = DefaultFile(); err != nil {
			return nil, err
		}
	}
	return New(cfg, path)
}
