// Package add provides the runner logic for adding tasks.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tasks/pkg/printers"
	"tableflip.dev/tasks/pkg/tasklist"
)

// Add appends a task and prints the resulting list.
type Add struct {
	Title       string
	Description string
	Emoji       string
	ShowID      bool

	Tasks *tasklist.List
	Out   io.Writer
}

// Do executes the add.
func (n *Add) Do(ctx context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not add, no task list")
	}
	t, err := n.Tasks.Add(ctx, n.Title, n.Description, n.Emoji)
	if errors.Is(err, tasklist.ErrEmptyTitle) {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Task("Added", t)
	pp.NewLine()
	all := n.Tasks.Tasks()
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return err
}
