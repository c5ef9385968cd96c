package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/calendar"
)

// Each day is two digits and a marker column.
const width = len(" 1*  2   3   4   5   6   7")

// Plain markers keep today and the selection visible without color.
const (
	todayMark         = "*"
	selectedMark      = "+"
	selectedTodayMark = "#"
)

// Calendar prints the picker's visible month. Today is bold and underlined
// with a trailing *, the selected day is inverted with a trailing +, and # marks
// a selected today. A footer names the selection.
func (pp *PrettyPrint) Calendar(p *calendar.Picker) {
	out := pp.out()
	month := p.Month()

	tf := color.New(color.Bold)
	label := month.MonthLabel()
	mid := (width - len(label)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), label)

	wf := color.New(color.Faint)
	_, _ = wf.Fprintln(out, "Su  Mo  Tu  We  Th  Fr  Sa")

	plain := color.New()
	today := color.New(color.Bold, color.Underline, color.FgCyan)
	selected := color.New(color.ReverseVideo, color.Bold)
	selectedToday := color.New(color.ReverseVideo, color.Bold, color.Underline)

	for _, week := range p.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			if !c.InMonth() {
				cells = append(cells, "   ")
				continue
			}
			printer, mark := plain, " "
			switch {
			case c.Mark.Selected && c.Mark.Today:
				printer, mark = selectedToday, selectedTodayMark
			case c.Mark.Selected:
				printer, mark = selected, selectedMark
			case c.Mark.Today:
				printer, mark = today, todayMark
			}
			cells = append(cells, printer.Sprintf("%2d", c.Date.Day)+printer.Sprint(mark))
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	if d, ok := p.Selected(); ok {
		_, _ = fmt.Fprintf(out, "\nSelected Date: %s\n", d)
	}
	_, _ = fmt.Fprintln(out, "")
}
