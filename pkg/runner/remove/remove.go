// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tasks/pkg/printers"
	"tableflip.dev/tasks/pkg/tasklist"
)

// Remove deletes one task.
type Remove struct {
	ID string

	Tasks *tasklist.List
	Out   io.Writer
}

// Do executes the delete for the configured task ID.
func (n *Remove) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not delete, no task list")
	}
	t, err := n.Tasks.Delete(ctx, n.ID)
	if errors.Is(err, tasklist.ErrNotFound) {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Task("Deleted", t)
	return err
}
