package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Title       string
	Description string
	Emoji       string
}

func AddTaskArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description of the task.")
	cmd.Flags().StringVarP(&o.Emoji, "emoji", "e", "",
		`Emoji shown with the task, defaults to "✏️".`)
}
