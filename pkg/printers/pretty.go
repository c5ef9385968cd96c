package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasks/pkg/task"
)

// PrettyPrint renders tasks and calendars for terminal output.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints one row per task in collection order.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.FgGreen)
	struck := color.New(color.CrossedOut, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	for _, t := range tasks {
		check := "[ ]"
		title := t.Title
		if t.Completed {
			check = done.Sprint("[x]")
			title = struck.Sprint(title)
		}
		row := []interface{}{check, t.Emoji, title, faint.Sprint(t.Description)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Task prints a one line confirmation for a changed task.
func (pp *PrettyPrint) Task(verb string, t task.Task) {
	b := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Faint)

	parts := []string{b.Sprint(verb), t.Emoji, t.Title}
	if t.Completed {
		parts = append(parts, "[x]")
	}
	_, _ = fmt.Fprintf(pp.out(), "%s %s\n", strings.Join(parts, " "), y.Sprintf("(%s)", t.ID))
}
