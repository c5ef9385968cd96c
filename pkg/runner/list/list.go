// Package list provides the runner logic for printing the task list.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/printers"
	"tableflip.dev/tasks/pkg/tasklist"
)

// List prints every task in collection order.
type List struct {
	ShowID bool
	JSON   bool
	// OpenOnly hides completed tasks.
	OpenOnly bool

	Tasks *tasklist.List
	Out   io.Writer
}

// Do executes the listing.
func (n *List) Do(_ context.Context) error {
	if n.Tasks == nil {
		return errors.New("can not list, no task list")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all := n.Tasks.Tasks()
	if n.OpenOnly {
		open := all[:0]
		for _, t := range all {
			if !t.Completed {
				open = append(open, t)
			}
		}
		all = open
	}

	if n.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}
