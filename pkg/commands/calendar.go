package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month calendar",
		Example: `
tasks calendar
tasks cal --month 2026-12 --select 2026-12-24
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			month, err := co.GetMonth()
			if err != nil {
				return output.HandleError(err)
			}
			sel, err := co.GetSelect()
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				Month:  month,
				Select: sel,
				Out:    cmd.OutOrStdout(),
			}
			err = c.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
