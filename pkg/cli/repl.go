package cli

import (
	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/repl"
)

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(a.streams.Out, &repl.Session{Color: isTerminal(a.streams.Out)})
		},
	}
}
