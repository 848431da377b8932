package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/calcx/internal/config"
	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/pipeline"
	"github.com/funvibe/calcx/internal/prettyprinter"
	"github.com/funvibe/calcx/internal/utils"
)

// SourceProcessor reads the input file into ctx.Source.
type SourceProcessor struct{}

func (sp *SourceProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}
	data, err := os.ReadFile(ctx.FilePath)
	if err != nil {
		ctx.Err = fmt.Errorf("read %s: %w", ctx.FilePath, err)
		return ctx
	}
	ctx.Source = data
	return ctx
}

// EvaluatorProcessor evaluates ctx.Source. An evaluation error is a normal
// outcome and does not fail the pipeline.
type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}
	ctx.Outcome = evaluator.Evaluate(ctx.Source)
	ctx.Evaluated = true

	if !ctx.Outcome.OK() {
		ctx.Logger.Debug("evaluation failed",
			"file", ctx.FilePath,
			"position", ctx.Outcome.Position(),
			"cause", ctx.Outcome.Err.Error())
	}
	return ctx
}

// PrinterProcessor renders ctx.Outcome.
type PrinterProcessor struct{}

func (pp *PrinterProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || !ctx.Evaluated {
		return ctx
	}
	ctx.Rendered = prettyprinter.AppendOutcome(ctx.Rendered[:0], ctx.Outcome)
	return ctx
}

// WriterProcessor writes the rendered result to
// <OutputDir>/<base>_<name>_<lastname>_<id>.txt.
type WriterProcessor struct {
	Identity config.Identity
}

func (wp *WriterProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() || !ctx.Evaluated {
		return ctx
	}
	path := utils.OutputFileName(ctx.FilePath, wp.Identity)
	if ctx.OutputDir != "" {
		path = filepath.Join(ctx.OutputDir, path)
	}
	if err := os.WriteFile(path, ctx.Rendered, 0o644); err != nil {
		ctx.Err = fmt.Errorf("write %s: %w", path, err)
		return ctx
	}
	ctx.OutputPath = path
	return ctx
}

// Stages returns the standard read -> evaluate -> print -> write stages
// followed by any extra ones.
func Stages(id config.Identity, extra ...pipeline.Processor) []pipeline.Processor {
	stages := []pipeline.Processor{
		&SourceProcessor{},
		&EvaluatorProcessor{},
		&PrinterProcessor{},
		&WriterProcessor{Identity: id},
	}
	return append(stages, extra...)
}
