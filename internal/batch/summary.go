package batch

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileResult is what happened to one input file.
type FileResult struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
	OK     bool   `yaml:"ok"`
	// Result is the rendered line without its newline.
	Result   string `yaml:"result,omitempty"`
	ErrorPos int    `yaml:"error_pos,omitempty"`
	// Error is an I/O failure; no result file was written.
	Error string `yaml:"error,omitempty"`
}

// Summary describes a whole batch run.
type Summary struct {
	RunID      string       `yaml:"run_id"`
	StartedAt  time.Time    `yaml:"started_at"`
	Finished   time.Time    `yaml:"finished_at"`
	OutputDir  string       `yaml:"output_dir"`
	OK         int          `yaml:"ok"`
	EvalErrors int          `yaml:"eval_errors"`
	IOErrors   int          `yaml:"io_errors"`
	Files      []FileResult `yaml:"files"`
}

func (s *Summary) count() {
	s.OK, s.EvalErrors, s.IOErrors = 0, 0, 0
	for _, f := range s.Files {
		switch {
		case f.Error != "":
			s.IOErrors++
		case f.OK:
			s.OK++
		default:
			s.EvalErrors++
		}
	}
}

// Err is ErrFilesFailed when any file hit an I/O failure. Evaluation errors
// are ordinary results and do not count.
func (s *Summary) Err() error {
	if s.IOErrors > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, s.IOErrors, len(s.Files))
	}
	return nil
}

// WriteReport writes the summary as YAML to path.
func WriteReport(path string, s *Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &s, nil
}
