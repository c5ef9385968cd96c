// Package calendar provides the calendar screen: a month grid date picker that
// marks today and the selected day.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	datepicker "tableflip.dev/tasks/pkg/calendar"
	"tableflip.dev/tasks/pkg/tui/theme"
)

const (
	weekdayHeader = "Su  Mo  Tu  We  Th  Fr  Sa"
	dotGlyph      = "•"
)

// GridWidth is the rendered width of a month grid.
var GridWidth = lipgloss.Width(weekdayHeader)

// Options controls calendar styling.
type Options struct {
	Theme theme.CalendarTheme
	// ShowCursor highlights the cursor day.
	ShowCursor bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{Theme: theme.Default().Calendar, ShowCursor: true}
}

// Render produces the month title, weekday header and week rows for the
// picker's visible month.
func Render(p *datepicker.Picker, opts Options) string {
	th := opts.Theme
	month := p.Month()

	title := fmt.Sprintf("‹  %s  ›", month.MonthLabel())
	lines := []string{
		th.Month.Render(center(title, GridWidth)),
		th.Weekdays.Render(weekdayHeader),
	}
	for _, week := range p.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c datepicker.Cell, opts Options) string {
	th := opts.Theme
	if !c.InMonth() {
		return th.Padding.Render("   ")
	}

	// Selected colors win over today's; today keeps its underline.
	style := th.Day
	switch {
	case c.Mark.Selected:
		style = th.Selected
		if c.Mark.Today {
			style = style.Underline(true)
		}
	case c.Mark.Today:
		style = th.Today
	}
	if opts.ShowCursor && c.Cursor && !c.Mark.Selected {
		style = style.Inherit(th.Cursor).Reverse(true)
	}

	dot := " "
	if d := c.Mark.Dot(); d != datepicker.DotNone {
		dot = th.Dots[d].Render(dotGlyph)
	}
	return style.Render(fmt.Sprintf("%2d", c.Date.Day)) + dot
}

// SelectedLine renders the "Selected Date" footer, or "" with no selection.
func SelectedLine(p *datepicker.Picker, opts Options) string {
	d, ok := p.Selected()
	if !ok {
		return ""
	}
	return opts.Theme.Footer.Render("Selected Date: " + d.String())
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
