package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/logger"
	"github.com/funvibe/calcx/internal/prettyprinter"
	"github.com/funvibe/calcx/internal/server"
)

// ErrEvaluation is returned by eval when the expression has an error. The
// ERROR:<pos> line has already been printed.
var ErrEvaluation = errors.New("evaluation failed")

func newEvalCommand(a *app) *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "eval [--remote ADDR] [EXPR...]",
		Short: "Evaluate an expression given as arguments or on stdin",
		Long: `eval joins its arguments with spaces and evaluates them as one expression.
With no arguments the expression is read from stdin.

It prints the result, or ERROR:<position>, and exits 1 on an evaluation error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := expressionSource(a.streams.In, args)
			if err != nil {
				return err
			}

			var o evaluator.Outcome
			if remote != "" {
				client, err := server.Dial(remote)
				if err != nil {
					return err
				}
				defer client.Close()
				if o, err = client.Evaluate(cmd.Context(), src); err != nil {
					return err
				}
			} else {
				o = evaluator.Evaluate([]byte(src))
			}

			if err := prettyprinter.Fprint(a.streams.Out, o); err != nil {
				return err
			}
			if !o.OK() {
				a.log.Debug("evaluation failed", "cause", o.Err.Error())
				return fmt.Errorf("%w at position %d", ErrEvaluation, o.Position())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "evaluate on a calcx server at ADDR")
	return cmd
}

func expressionSource(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := in.(*os.File); ok && logger.IsTerminal(f) {
		return "", usagef("no expression given and stdin is a terminal")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
