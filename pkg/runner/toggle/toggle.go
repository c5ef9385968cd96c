// Package toggle provides the runner logic for flipping task completion.
package toggle

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tasks/pkg/printers"
	"tableflip.dev/tasks/pkg/tasklist"
)

// Toggle flips the completion flag of one task.
type Toggle struct {
	ID string

	Tasks *tasklist.List
	Out   io.Writer
}

// Do executes the toggle for the configured task ID.
func (n *Toggle) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not toggle, no task list")
	}
	t, err := n.Tasks.ToggleComplete(ctx, n.ID)
	if errors.Is(err, tasklist.ErrNotFound) {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if t.Completed {
		pp.Task("Completed", t)
	} else {
		pp.Task("Reopened", t)
	}
	return err
}
