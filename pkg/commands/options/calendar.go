package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/calendar"
)

// CalendarOptions
type CalendarOptions struct {
	MonthString  string
	SelectString string
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Month to show, example: --month="2026-10". Defaults to the current month.`)
	cmd.Flags().StringVar(&o.SelectString, "select", "",
		`Day to mark as selected, example: --select="2026-10-20".`)
}

// GetMonth returns the requested month, or the zero Date when unset.
func (o *CalendarOptions) GetMonth() (calendar.Date, error) {
	if o.MonthString == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseMonth(o.MonthString)
}

// GetSelect returns the requested selection, or the zero Date when unset.
func (o *CalendarOptions) GetSelect() (calendar.Date, error) {
	if o.SelectString == "" {
		return calendar.Date{}, nil
	}
	return calendar.ParseDate(o.SelectString)
}
