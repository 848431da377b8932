package history

import (
	"context"
	"strings"

	"github.com/funvibe/calcx/internal/pipeline"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

// RecorderProcessor stores every evaluated file in the history database.
// A storage failure is logged but does not fail the file: its result has
// already been written.
type RecorderProcessor struct {
	Store *Store
}

func (rp *RecorderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || !ctx.Evaluated {
		return ctx
	}
	rec := Record{
		RunID:    ctx.RunID,
		Input:    ctx.FilePath,
		Output:   ctx.OutputPath,
		OK:       ctx.Outcome.OK(),
		Result:   strings.TrimSuffix(prettyprinter.Format(ctx.Outcome), "\n"),
		ErrorPos: ctx.Outcome.Position(),
	}
	if err := rp.Store.Record(context.Background(), rec); err != nil {
		ctx.Logger.Warn("history not recorded", "file", ctx.FilePath, "error", err)
	}
	return ctx
}
