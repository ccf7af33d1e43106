package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lumen/internal/storage"
)

// newLogger builds the application logger. Output goes to the configured
// log file, or to fallback when none is set. The returned closer releases
// the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lumen",
	})
	if cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}

// openStore opens the run log. Failures are logged and play continues
// without storage; an empty path disables the run log.
func openStore(logger *log.Logger) *storage.Store {
	if cfg.Storage.Path == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}

// playerName returns the name recorded with local runs.
func playerName() string {
	if cfg.Display.PlayerName != "" {
		return cfg.Display.PlayerName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
