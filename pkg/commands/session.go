package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"tableflip.dev/tasks/pkg/logging"
	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/tasklist"
)

// session is the configured store and loaded task list a command works on.
type session struct {
	Config      store.Config
	Persistence store.Persistence
	Tasks       *tasklist.List
	Logger      *slog.Logger

	closeLog func() error
}

// openSession loads configuration, opens the store and reads the task list.
// A failed read is logged and leaves the list empty, matching how the UI
// treats missing or unreadable data. With toFile set, logs go to the
// configured log file instead of stderr so they do not corrupt the screen.
func openSession(ctx context.Context, toFile bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel())
	closeLog := func() error { return nil }
	if toFile {
		path := cfg.LogFile()
		if path == "" {
			path = filepath.Join(os.TempDir(), "tasks.log")
		}
		logger, closeLog, err = logging.Open(path, cfg.LogLevel())
		if err != nil {
			return nil, err
		}
	}

	p, err := store.Load(cfg)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	l := tasklist.New(p, tasklist.WithLogger(logger))
	_ = l.Load(ctx)

	return &session{
		Config:      cfg,
		Persistence: p,
		Tasks:       l,
		Logger:      logger,
		closeLog:    closeLog,
	}, nil
}

func (s *session) Close() error {
	if s == nil || s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}
