// Package calendar provides the runner logic for printing a month grid.
package calendar

import (
	"context"
	"io"

	"tableflip.dev/tasks/pkg/calendar"
	"tableflip.dev/tasks/pkg/printers"
)

// Calendar prints one month with today and an optional selected day marked.
type Calendar struct {
	// Month is any day of the month to show; zero means today's month.
	Month calendar.Date
	// Select is the day to mark as selected; zero means none.
	Select calendar.Date
	// Today overrides the clock.
	Today func() calendar.Date

	Out io.Writer
}

// Do prints the month.
func (n *Calendar) Do(_ context.Context) error {
	p := calendar.NewPicker(n.Today)
	if !n.Select.IsZero() {
		p.SelectDate(n.Select)
	}
	if !n.Month.IsZero() {
		p.ShowMonth(n.Month)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Calendar(p)
	return nil
}
