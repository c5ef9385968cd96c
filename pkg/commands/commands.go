package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: options.Wrap80("A task list with a calendar, in the terminal."),
		Long: options.Wrap80("Keep a list of tasks with an emoji, title and description, " +
			"check them off, and pick days on a month calendar. Run without a " +
			"subcommand to open the interface, or print the list when output is not a terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdout) {
				return runUI(cmd)
			}
			return runList(cmd, &options.IDOptions{}, &options.OutputOptions{}, false)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addToggle(topLevel)
	addDelete(topLevel)
	addCalendar(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
