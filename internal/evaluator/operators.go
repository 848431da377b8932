package evaluator

import (
	"fmt"
	"math"

	"github.com/funvibe/calcx/internal/token"
)

func Add(left, right Value) Value {
	v, _ := evalInfixExpression(token.PLUS, left, right)
	return v
}

func Sub(left, right Value) Value {
	v, _ := evalInfixExpression(token.MINUS, left, right)
	return v
}

func Mul(left, right Value) Value {
	v, _ := evalInfixExpression(token.ASTERISK, left, right)
	return v
}

// Div always yields a Float. It returns ErrDivisionByZero when right is zero;
// the caller decides which source position the fault belongs to.
func Div(left, right Value) (Value, error) {
	return evalInfixExpression(token.SLASH, left, right)
}

// Pow always yields a Float, even for integer operands.
func Pow(base, exp Value) Value {
	v, _ := evalInfixExpression(token.POWER, base, exp)
	return v
}

// Neg keeps the kind of v.
func Neg(v Value) Value {
	switch v := v.(type) {
	case Integer:
		return Integer{Value: -v.Value}
	case Float:
		return Float{Value: -v.Value}
	default:
		return v
	}
}

func evalInfixExpression(operator token.TokenType, left, right Value) (Value, error) {
	switch operator {
	case token.POWER:
		return Float{Value: math.Pow(ToFloat(left), ToFloat(right))}, nil
	case token.SLASH:
		if IsZero(right) {
			return nil, ErrDivisionByZero
		}
		return Float{Value: ToFloat(left) / ToFloat(right)}, nil
	}

	l, lok := left.(Integer)
	r, rok := right.(Integer)
	if lok && rok {
		return evalIntegerInfixExpression(operator, l.Value, r.Value)
	}

	// Implicit Int -> Float conversion
	return evalFloatInfixExpression(operator, ToFloat(left), ToFloat(right))
}

func evalIntegerInfixExpression(operator token.TokenType, left, right int64) (Value, error) {
	switch operator {
	case token.PLUS:
		return Integer{Value: left + right}, nil
	case token.MINUS:
		return Integer{Value: left - right}, nil
	case token.ASTERISK:
		return Integer{Value: left * right}, nil
	default:
		return nil, fmt.Errorf("unknown operator: %s %s %s", INTEGER_VAL, operator, INTEGER_VAL)
	}
}

func evalFloatInfixExpression(operator token.TokenType, left, right float64) (Value, error) {
	switch operator {
	case token.PLUS:
		return Float{Value: left + right}, nil
	case token.MINUS:
		return Float{Value: left - right}, nil
	case token.ASTERISK:
		return Float{Value: left * right}, nil
	default:
		return nil, fmt.Errorf("unknown operator: %s %s %s", FLOAT_VAL, operator, FLOAT_VAL)
	}
}
