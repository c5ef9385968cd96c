package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <task id>",
		Aliases: []string{"complete", "done"},
		Short:   "Mark a task completed, or open again",
		Example: `
tasks toggle 1700000000000
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

			t := toggle.Toggle{
				ID:    io.ID,
				Tasks: s.Tasks,
				Out:   cmd.OutOrStdout(),
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
