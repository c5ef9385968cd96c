package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/tasklist"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tasks completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tasks completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// taskIDCompletions offers task ids with their titles as descriptions.
func taskIDCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := store.Load(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	l := tasklist.New(p)
	if err := l.Load(context.Background()); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completionsFor(l, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completionsFor(l *tasklist.List, toComplete string) []string {
	var out []string
	for _, t := range l.Tasks() {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Emoji+" "+t.Title)
		}
	}
	return out
}
