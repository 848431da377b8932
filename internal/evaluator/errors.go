package evaluator

import (
	"errors"
	"fmt"

	"github.com/funvibe/calcx/internal/token"
)

var (
	// ErrUnexpectedToken indicates a token that cannot start a primary expression.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEOF indicates the input ended where a number or '(' was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnclosedParen indicates a parenthesised expression without its ')'.
	ErrUnclosedParen = errors.New("missing closing parenthesis")

	// ErrDivisionByZero indicates a zero divisor; the position is that of the '/'.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrTrailingInput indicates tokens left over after a complete expression.
	ErrTrailingInput = errors.New("unexpected input after expression")
)

// Error is an evaluation fault. Callers only need Pos; Cause says why that
// position was chosen and is matched with errors.Is.
type Error struct {
	Pos   int         // 1-based character position
	Cause error       // one of the Err* sentinels
	Token token.Token // token found at Pos
}

func (e *Error) Error() string {
	switch e.Token.Type {
	case token.EOF, "":
		return fmt.Sprintf("%v at position %d", e.Cause, e.Pos)
	default:
		return fmt.Sprintf("%v at position %d (found %q)", e.Cause, e.Pos, e.Token.Lexeme)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func newErrorAt(tok token.Token, cause error) *Error {
	return &Error{Pos: tok.Pos, Cause: cause, Token: tok}
}
