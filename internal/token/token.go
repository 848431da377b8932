package token

import "fmt"

type TokenType string

const (
	EOF     TokenType = "EOF"
	ILLEGAL TokenType = "ILLEGAL"
	NUMBER  TokenType = "NUMBER"

	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	POWER    TokenType = "**"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
)

// Number is the payload of a NUMBER token.
// Float is always set; Int is meaningful only when IsFloat is false.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// Token is a lexical unit. Pos is the 1-based character offset of its first
// character in the source; every character, newlines included, counts as one.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    int
	Num    Number
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return fmt.Sprintf("%d:EOF", t.Pos)
	case NUMBER:
		kind := "int"
		if t.Num.IsFloat {
			kind = "float"
		}
		return fmt.Sprintf("%d:NUMBER(%s %s)", t.Pos, kind, t.Lexeme)
	case ILLEGAL:
		return fmt.Sprintf("%d:ILLEGAL(%q)", t.Pos, t.Lexeme)
	default:
		return fmt.Sprintf("%d:%s", t.Pos, t.Type)
	}
}
