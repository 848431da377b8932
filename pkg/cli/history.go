package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/config"
	"github.com/funvibe/calcx/internal/history"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history [--db PATH] [--limit N]",
		Short: "List recently recorded results",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := firstNonEmpty(dbPath, a.cfg.History)
			if path == "" {
				return usagef("no history database: pass --db or set history in %s", config.ConfigFileName)
			}
			if limit <= 0 {
				return usagef("--limit must be positive")
			}

			store, err := history.OpenExisting(path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.streams.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tINPUT\tRESULT\tRUN")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Input, r.Result, shortID(r.RunID))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "history database (default: history from config)")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of results to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
