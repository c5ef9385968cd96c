package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tasks ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	s, err := openSession(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer s.Close()

	i := ui.UI{
		Tasks:       s.Tasks,
		Persistence: s.Persistence,
		Logger:      s.Logger,
	}
	return i.Do(cmd.Context())
}
