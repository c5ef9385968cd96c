package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
tasks add buy milk
tasks add call mom -d "about sunday" -e 📞
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ao.Title = strings.Join(args, " ")
			if strings.TrimSpace(ao.Title) == "" {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Title:       ao.Title,
				Description: ao.Description,
				Emoji:       ao.Emoji,
				ShowID:      io.ShowID,
				Tasks:       s.Tasks,
				Out:         cmd.OutOrStdout(),
			}
			err = a.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
