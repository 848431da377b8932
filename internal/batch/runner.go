package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/calcx/internal/config"
	"github.com/funvibe/calcx/internal/pipeline"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

// ErrFilesFailed is returned by Summary.Err when at least one file could not
// be read or written.
var ErrFilesFailed = errors.New("some files could not be processed")

// Options configures a Runner.
type Options struct {
	OutputDir string
	Identity  config.Identity

	// Jobs bounds concurrent files. Zero means NumCPU.
	Jobs int

	// Extra stages run after the result is written, e.g. the history recorder.
	Extra []pipeline.Processor

	// OnBegin, when set, is called once with the run id before any file is
	// processed. An error aborts the run.
	OnBegin func(ctx context.Context, runID string, inputs []string) error

	Logger *slog.Logger
}

// Runner evaluates a set of input files and writes one result file each.
type Runner struct {
	opts  Options
	newID func() string
	now   func() time.Time
}

func NewRunner(opts Options) *Runner {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		opts:  opts,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
}

// Run processes inputs concurrently. A file that cannot be read or written
// is logged and recorded in the summary; the others still run. The returned
// error is non-nil only when the run could not start or ctx was cancelled.
func (r *Runner) Run(ctx context.Context, inputs []string) (*Summary, error) {
	summary := &Summary{
		RunID:     r.newID(),
		StartedAt: r.now().UTC(),
		OutputDir: r.opts.OutputDir,
		Files:     make([]FileResult, len(inputs)),
	}
	log := r.opts.Logger.With("run", summary.RunID)

	if r.opts.OutputDir != "" {
		if err := os.MkdirAll(r.opts.OutputDir, 0o775); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", r.opts.OutputDir, err)
		}
	}
	if r.opts.OnBegin != nil {
		if err := r.opts.OnBegin(ctx, summary.RunID, inputs); err != nil {
			return nil, fmt.Errorf("starting run: %w", err)
		}
	}

	log.Info("batch started", "files", len(inputs), "output_dir", r.opts.OutputDir, "jobs", r.opts.Jobs)

	p := pipeline.New(Stages(r.opts.Identity, r.opts.Extra...)...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				summary.Files[i] = FileResult{Input: input, Error: err.Error()}
				return nil
			}
			pctx := pipeline.NewContext(summary.RunID, input, r.opts.OutputDir, log)
			summary.Files[i] = resultFrom(p.Run(pctx))
			return nil
		})
	}
	// Workers never return errors, so Wait only synchronises.
	_ = g.Wait()

	summary.Finished = r.now().UTC()
	summary.count()
	for _, f := range summary.Files {
		if f.Error != "" {
			log.Error("file failed", "file", f.Input, "error", f.Error)
		}
	}
	log.Info("batch finished", "ok", summary.OK, "eval_errors", summary.EvalErrors, "io_errors", summary.IOErrors)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func resultFrom(ctx *pipeline.PipelineContext) FileResult {
	res := FileResult{Input: ctx.FilePath, Output: ctx.OutputPath}
	if ctx.Err != nil {
		res.Error = ctx.Err.Error()
		return res
	}
	if ctx.Outcome.OK() {
		res.OK = true
		res.Result = strings.TrimSuffix(string(ctx.Rendered), "\n")
	} else {
		res.ErrorPos = ctx.Outcome.Position()
		res.Result = prettyprinter.ErrorPrefix + fmt.Sprint(res.ErrorPos)
	}
	return res
}
