package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a task",
		Example: `
tasks delete 1700000000000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.TrimSpace(args[0])
			return nil
		},
		ValidArgsFunction: taskIDCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := remove.Remove{
				ID:    io.ID,
				Tasks: s.Tasks,
				Out:   cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
