package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const logFileName = "pixelfront.log"

// newLogger builds a file-backed zap logger. The terminal belongs to the UI,
// so stdout/stderr are never used; if the log file cannot be set up the app
// runs with a no-op logger instead of failing.
func newLogger() *zap.Logger {
	dir, err := logDir()
	if err != nil {
		return zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, logFileName)}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func logDir() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "pixelfront"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "pixelfront"), nil
}
