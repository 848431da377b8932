package evaluator

import (
	"github.com/funvibe/calcx/internal/token"
)

// Grammar, lowest precedence first:
//
//	expr    := term ( ('+'|'-') term )*
//	term    := power ( ('*'|'/') power )*
//	power   := unary ( '**' power )?
//	unary   := ('+'|'-') unary | primary
//	primary := NUMBER | '(' expr ')'
//
// The first fault returns straight up the stack, so the earliest error in
// the left-to-right pass is the one reported.

func (e *Evaluator) evalExpression() (Value, error) {
	left, err := e.evalTerm()
	if err != nil {
		return nil, err
	}

	for e.cur.Type == token.PLUS || e.cur.Type == token.MINUS {
		op := e.cur.Type
		e.next()
		right, err := e.evalTerm()
		if err != nil {
			return nil, err
		}
		if op == token.PLUS {
			left = Add(left, right)
		} else {
			left = Sub(left, right)
		}
	}
	return left, nil
}

func (e *Evaluator) evalTerm() (Value, error) {
	left, err := e.evalPower()
	if err != nil {
		return nil, err
	}

	for e.cur.Type == token.ASTERISK || e.cur.Type == token.SLASH {
		opTok := e.cur
		e.next()
		right, err := e.evalPower()
		if err != nil {
			return nil, err
		}
		if opTok.Type == token.ASTERISK {
			left = Mul(left, right)
			continue
		}
		left, err = Div(left, right)
		if err != nil {
			// Reported at the '/' itself, not at either operand.
			return nil, newErrorAt(opTok, err)
		}
	}
	return left, nil
}

// evalPower recurses on its right operand, which makes '**' right-associative.
// Its left operand goes through evalUnary, so -2**2 is (-2)**2.
func (e *Evaluator) evalPower() (Value, error) {
	base, err := e.evalUnary()
	if err != nil {
		return nil, err
	}
	if e.cur.Type != token.POWER {
		return base, nil
	}

	e.next()
	exp, err := e.evalPower()
	if err != nil {
		return nil, err
	}
	return Pow(base, exp), nil
}

func (e *Evaluator) evalUnary() (Value, error) {
	switch e.cur.Type {
	case token.PLUS:
		e.next()
		return e.evalUnary()
	case token.MINUS:
		e.next()
		v, err := e.evalUnary()
		if err != nil {
			return nil, err
		}
		return Neg(v), nil
	default:
		return e.evalPrimary()
	}
}

func (e *Evaluator) evalPrimary() (Value, error) {
	switch e.cur.Type {
	case token.NUMBER:
		num := e.cur.Num
		e.next()
		if num.IsFloat {
			return Float{Value: num.Float}, nil
		}
		return Integer{Value: num.Int}, nil

	case token.LPAREN:
		e.next()
		inner, err := e.evalExpression()
		if err != nil {
			return nil, err
		}
		if e.cur.Type != token.RPAREN {
			return nil, newErrorAt(e.cur, ErrUnclosedParen)
		}
		e.next()
		return inner, nil

	case token.EOF:
		return nil, newErrorAt(e.cur, ErrUnexpectedEOF)

	default:
		tok := e.cur
		e.next()
		return nil, newErrorAt(tok, ErrUnexpectedToken)
	}
}
