package pipeline

import (
	"log/slog"

	"github.com/funvibe/calcx/internal/evaluator"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a plain function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries one input file through the stages.
type PipelineContext struct {
	RunID      string
	FilePath   string
	OutputDir  string
	OutputPath string

	Source   []byte
	Outcome  evaluator.Outcome
	Rendered []byte

	// Evaluated is set once Outcome holds a real result.
	Evaluated bool

	// Err is an I/O failure. Evaluation errors live in Outcome, not here.
	Err error

	Logger *slog.Logger
}

func NewContext(runID, filePath, outputDir string, log *slog.Logger) *PipelineContext {
	if log == nil {
		log = slog.Default()
	}
	return &PipelineContext{
		RunID:     runID,
		FilePath:  filePath,
		OutputDir: outputDir,
		Logger:    log,
	}
}

// Failed reports whether an I/O stage has failed.
func (c *PipelineContext) Failed() bool { return c.Err != nil }
