package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/ppiankov/placevalue/internal/cache"
	"github.com/ppiankov/placevalue/internal/history"
	"github.com/ppiankov/placevalue/internal/model"
)

// openHistory opens the configured history backend. The returned close
// function must be called when done.
func openHistory(cfg *model.Config) (*history.Store, func() error, error) {
	dir := cfg.History.Dir
	if dir == "" {
		base, err := configDir()
		if err != nil {
			return nil, nil, err
		}
		dir = filepath.Join(base, "history")
	}

	var c cache.Cache
	closeFn := func() error { return nil }

	switch cfg.History.Backend {
	case "sqlite":
		db, err := cache.NewSQLiteCache(filepath.Join(dir, "history.db"), cfg.History.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("open history: %w", err)
		}
		c = cache.NewLayeredOver(cfg.History.TTL, db)
		closeFn = db.Close
	default:
		c = cache.NewLayeredCache(cfg.History.TTL, dir, cfg.History.TTL)
	}

	return history.NewStore(c, cfg.History.Size, cfg.History.TTL, logger), closeFn, nil
}

// recordHistory adds a valid input to the history, logging failures
func recordHistory(cfg *model.Config, input, result string) {
	if !cfg.History.Enabled {
		return
	}

	store, closeFn, err := openHistory(cfg)
	if err != nil {
		logger.Warn("History unavailable", zap.Error(err))
		return
	}
	defer func() { _ = closeFn() }()

	if _, err := store.Add(input, result); err != nil {
		logger.Warn("Failed to record history", zap.Error(err))
	}
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
