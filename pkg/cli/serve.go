package cli

import (
	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve [--listen ADDR]",
		Short: "Serve the Calculator gRPC service",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := firstNonEmpty(listen, a.cfg.Listen)
			srv := server.New(a.log)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe(addr) }()

			select {
			case <-cmd.Context().Done():
				a.log.Info("shutting down")
				srv.Stop()
				return <-errCh
			case err := <-errCh:
				return err
			}
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default: config or 127.0.0.1:7070)")
	return cmd
}
