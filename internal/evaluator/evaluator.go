package evaluator

import (
	"errors"

	"github.com/funvibe/calcx/internal/lexer"
	"github.com/funvibe/calcx/internal/token"
)

// Evaluator parses and evaluates in a single recursive-descent pass; no
// syntax tree is built. It holds one current token and pulls the next from
// the lexer on demand.
type Evaluator struct {
	l   *lexer.Lexer
	cur token.Token
}

func New(src []byte) *Evaluator {
	return &Evaluator{l: lexer.New(src)}
}

// Eval evaluates src. The returned error, if any, is an *Error.
func Eval(src []byte) (Value, error) {
	return New(src).Run()
}

// Run evaluates the whole source from the beginning. Running twice gives the
// same result.
func (e *Evaluator) Run() (Value, error) {
	e.l.Reset()
	e.next()

	v, err := e.evalExpression()
	if err != nil {
		return nil, err
	}
	if e.cur.Type != token.EOF {
		return nil, newErrorAt(e.cur, ErrTrailingInput)
	}
	return v, nil
}

func (e *Evaluator) next() {
	e.cur = e.l.NextToken()
}

// Outcome is the result of evaluating one buffer: a Value on success, an
// *Error otherwise. Exactly one of the two is set.
type Outcome struct {
	Value Value
	Err   *Error
}

// Evaluate is Eval folded into an Outcome.
func Evaluate(src []byte) Outcome {
	v, err := Eval(src)
	if err != nil {
		var evalErr *Error
		if !errors.As(err, &evalErr) {
			evalErr = &Error{Cause: err}
		}
		return Outcome{Err: evalErr}
	}
	return Outcome{Value: v}
}

func (o Outcome) OK() bool { return o.Err == nil }

// Position is the 1-based error position, or 0 on success.
func (o Outcome) Position() int {
	if o.Err == nil {
		return 0
	}
	return o.Err.Pos
}
