package cli

import (
	"github.com/spf13/cobra"

	"github.com/funvibe/calcx/internal/batch"
	"github.com/funvibe/calcx/internal/history"
	"github.com/funvibe/calcx/internal/pipeline"
	"github.com/funvibe/calcx/internal/utils"
)

type batchOptions struct {
	dir       string
	outputDir string
	jobs      int
	history   string
	report    string
}

func newBatchCommand(a *app) *cobra.Command {
	o := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "calcx [-d DIR] [-o OUTDIR] [input.txt]",
		Short: "Evaluate arithmetic expression files",
		Long: `calcx evaluates the arithmetic expression in each input file and writes
the result, or ERROR:<position>, to <base>_<name>_<lastname>_<id>.txt.

With -d every *.txt file directly inside DIR is processed. Without -o the
output directory is <input_base>_<user>_<id>, where the input is DIR or the
single file.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.dir, "dir", "d", "", "process every *.txt file in DIR (non-recursive)")
	f.StringVarP(&o.outputDir, "output-dir", "o", "", "directory for result files")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "files evaluated concurrently (default: config or number of CPUs)")
	f.StringVar(&o.history, "history", "", "record results in this SQLite database")
	f.StringVar(&o.report, "report", "", "write a YAML run summary to this file")
	return cmd
}

func runBatch(cmd *cobra.Command, a *app, o *batchOptions, args []string) error {
	if o.dir == "" && len(args) == 0 {
		return usagef("an input file or --dir is required")
	}
	if o.jobs < 0 {
		return usagef("--jobs must not be negative")
	}

	var (
		inputs []string
		source string
		err    error
	)
	if o.dir != "" {
		if len(args) > 0 {
			a.log.Warn("input file ignored because --dir is set", "file", args[0])
		}
		source = o.dir
		inputs, err = batch.Discover(o.dir)
		if err != nil {
			return err
		}
	} else {
		source = args[0]
		inputs = []string{args[0]}
	}

	outDir := firstNonEmpty(o.outputDir, a.cfg.OutputDir)
	if outDir == "" {
		outDir = utils.DefaultOutputDir(source, utils.CurrentUser(), a.cfg.Identity)
	}

	opts := batch.Options{
		OutputDir: outDir,
		Identity:  a.cfg.Identity,
		Jobs:      a.cfg.Jobs,
		Logger:    a.log,
	}
	if o.jobs > 0 {
		opts.Jobs = o.jobs
	}

	if dbPath := firstNonEmpty(o.history, a.cfg.History); dbPath != "" {
		store, err := history.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.OnBegin = store.BeginRun
		opts.Extra = []pipeline.Processor{&history.RecorderProcessor{Store: store}}
	}

	summary, err := batch.NewRunner(opts).Run(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	if reportPath := firstNonEmpty(o.report, a.cfg.Report); reportPath != "" {
		if err := batch.WriteReport(reportPath, summary); err != nil {
			return err
		}
	}

	if len(inputs) == 0 {
		a.log.Warn("no input files found", "dir", o.dir)
	}
	return summary.Err()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
