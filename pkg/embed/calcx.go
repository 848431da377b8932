// Package calcx is the public API for evaluating calcx expressions from Go.
package calcx

import (
	"strings"

	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

// Evaluation error causes, matched with errors.Is against Outcome.Err().
var (
	ErrUnexpectedToken = evaluator.ErrUnexpectedToken
	ErrUnexpectedEOF   = evaluator.ErrUnexpectedEOF
	ErrUnclosedParen   = evaluator.ErrUnclosedParen
	ErrDivisionByZero  = evaluator.ErrDivisionByZero
	ErrTrailingInput   = evaluator.ErrTrailingInput
)

// Outcome is the result of evaluating one buffer: a number or an error
// position. The zero Outcome is not meaningful.
type Outcome struct {
	inner evaluator.Outcome
}

// Evaluate evaluates src as a single expression. It is safe to call from
// many goroutines at once.
func Evaluate(src []byte) Outcome {
	return Outcome{inner: evaluator.Evaluate(src)}
}

// EvaluateString is Evaluate for a string.
func EvaluateString(src string) Outcome {
	return Evaluate([]byte(src))
}

// Format renders o as output text: the number, or ERROR:<pos>, followed by
// a newline.
func Format(o Outcome) string {
	return prettyprinter.Format(o.inner)
}

func (o Outcome) OK() bool { return o.inner.OK() }

// Position is the 1-based error position, or 0 on success.
func (o Outcome) Position() int { return o.inner.Position() }

// Err returns the evaluation error, or nil.
func (o Outcome) Err() error {
	if o.inner.Err == nil {
		return nil
	}
	return o.inner.Err
}

// IsFloat reports whether a successful result is floating point.
func (o Outcome) IsFloat() bool {
	_, ok := o.inner.Value.(evaluator.Float)
	return ok
}

// Value returns the result as int64 or float64, or nil on failure.
func (o Outcome) Value() interface{} {
	if !o.OK() {
		return nil
	}
	return defaultMarshaller.FromValue(o.inner.Value)
}

// Float64 returns the result as a float64 and whether there was one.
func (o Outcome) Float64() (float64, bool) {
	if !o.OK() {
		return 0, false
	}
	return evaluator.ToFloat(o.inner.Value), true
}

// String is Format without the trailing newline.
func (o Outcome) String() string {
	return strings.TrimSuffix(Format(o), "\n")
}
