package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	openOnly := false

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List tasks",
		Example: `
tasks list
tasks ls --show-id
tasks list --open --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runList(cmd, io, output, openOnly)
		},
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "Hide completed tasks.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command, io *options.IDOptions, output *options.OutputOptions, openOnly bool) error {
	s, err := openSession(cmd.Context(), false)
	if err != nil {
		return output.HandleError(err)
	}
	defer s.Close()

	l := list.List{
		ShowID:   io.ShowID,
		JSON:     output.JSON,
		OpenOnly: openOnly,
		Tasks:    s.Tasks,
		Out:      cmd.OutOrStdout(),
	}
	err = l.Do(cmd.Context())
	return output.HandleError(err)
}
