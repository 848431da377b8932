package lexer

import (
	"errors"
	"strconv"

	"github.com/funvibe/calcx/internal/token"
)

// Lexer turns a source buffer into tokens on demand.
// It never looks back: the only way to rescan is Reset.
//
// Positions are 1-based byte offsets: every byte, including '\n' and each
// byte of a multi-byte UTF-8 sequence, is one position.
type Lexer struct {
	input    []byte
	position int // byte offset of the next unread byte
}

func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

// Reset rewinds the lexer to the start of its input.
func (l *Lexer) Reset() {
	l.position = 0
}

// pos is the 1-based position of the next unread byte.
func (l *Lexer) pos() int { return l.position + 1 }

// Tokenize scans the whole input and returns every token up to and including EOF.
func Tokenize(input []byte) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return token.Token{Type: token.EOF, Pos: l.pos()}
	}

	ch := l.input[l.position]
	switch ch {
	case '+':
		return l.single(token.PLUS)
	case '-':
		return l.single(token.MINUS)
	case '/':
		return l.single(token.SLASH)
	case '(':
		return l.single(token.LPAREN)
	case ')':
		return l.single(token.RPAREN)
	case '*':
		if l.peekByte() == '*' {
			tok := token.Token{Type: token.POWER, Lexeme: "**", Pos: l.pos()}
			l.advance(2)
			return tok
		}
		return l.single(token.ASTERISK)
	}

	if isDigit(ch) || ch == '.' {
		if tok, ok := l.readNumber(); ok {
			return tok
		}
	}

	return l.illegal()
}

func (l *Lexer) single(tt token.TokenType) token.Token {
	tok := token.Token{Type: tt, Lexeme: string(tt), Pos: l.pos()}
	l.advance(1)
	return tok
}

// illegal consumes exactly one byte.
func (l *Lexer) illegal() token.Token {
	tok := token.Token{Type: token.ILLEGAL, Lexeme: string(l.input[l.position : l.position+1]), Pos: l.pos()}
	l.advance(1)
	return tok
}

// readNumber scans the longest decimal real literal at the cursor:
// digits [. digits] [(e|E) [+|-] digits]. The mantissa needs at least one
// digit and the exponent is only taken when it has digits. It reports false,
// consuming nothing, when no literal starts here (a lone '.').
//
// Only this decimal form is a number. Hex literals, "inf" and "nan" are not
// accepted: "0x10" is the number 0 followed by an ILLEGAL 'x'.
func (l *Lexer) readNumber() (token.Token, bool) {
	start := l.position
	n := len(l.input)

	i := start
	for i < n && isDigit(l.input[i]) {
		i++
	}
	intDigits := i - start

	if i < n && l.input[i] == '.' {
		j := i + 1
		for j < n && isDigit(l.input[j]) {
			j++
		}
		if intDigits > 0 || j > i+1 {
			i = j
		}
	}
	if i == start {
		return token.Token{}, false
	}

	if i < n && (l.input[i] == 'e' || l.input[i] == 'E') {
		j := i + 1
		if j < n && (l.input[j] == '+' || l.input[j] == '-') {
			j++
		}
		if j < n && isDigit(l.input[j]) {
			for j < n && isDigit(l.input[j]) {
				j++
			}
			i = j
		}
	}

	lexeme := string(l.input[start:i])
	tok := token.Token{Type: token.NUMBER, Lexeme: lexeme, Pos: l.pos(), Num: parseNumber(lexeme)}
	l.advance(i - start)
	return tok, true
}

// parseNumber classifies a scanned literal. Text with '.', 'e' or 'E' is a
// float; otherwise it is an int64 unless that overflows, in which case the
// float value is kept.
func parseNumber(lexeme string) token.Number {
	// Overflow yields ±Inf with ErrRange; the value is still what we want.
	f, _ := strconv.ParseFloat(lexeme, 64)
	num := token.Number{IsFloat: true, Float: f}

	for i := 0; i < len(lexeme); i++ {
		if c := lexeme[i]; c == '.' || c == 'e' || c == 'E' {
			return num
		}
	}

	iv, err := strconv.ParseInt(lexeme, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return num
	}
	num.IsFloat = false
	num.Int = iv
	return num
}

func (l *Lexer) advance(n int) {
	l.position += n
}

func (l *Lexer) peekByte() byte {
	if l.position+1 >= len(l.input) {
		return 0
	}
	return l.input[l.position+1]
}

// skipWhitespace skips blanks and '#' comments, which run to the end of the line.
func (l *Lexer) skipWhitespace() {
	for {
		for l.position < len(l.input) && isSpace(l.input[l.position]) {
			l.advance(1)
		}
		if l.position < len(l.input) && l.input[l.position] == '#' {
			for l.position < len(l.input) && l.input[l.position] != '\n' {
				l.advance(1)
			}
			continue
		}
		break
	}
}


func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
