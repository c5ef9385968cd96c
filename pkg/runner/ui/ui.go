// Package ui provides the runner that opens the terminal UI.
package ui

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/tasklist"
	"tableflip.dev/tasks/pkg/tui/app"
)

// UI runs the two tab task and calendar interface until the user quits.
type UI struct {
	Tasks       *tasklist.List
	Persistence store.Persistence
	Logger      *slog.Logger
}

// Do blocks while the program runs.
func (d *UI) Do(ctx context.Context) error {
	if d.Tasks == nil {
		return errors.New("can not open ui, no task list")
	}
	if d.Logger != nil {
		d.Logger.Info("opening ui", slog.Int("count", d.Tasks.Len()))
	}
	return app.Run(ctx, d.Tasks, d.Persistence, app.WithLogger(d.Logger))
}
