package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/lexer"
)

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file, one token per line",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			for _, tok := range lexer.Tokenize(data) {
				if _, err := fmt.Fprintln(a.streams.Out, tok.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
