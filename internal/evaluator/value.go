package evaluator

import (
	"strconv"
)

type ValueType string

const (
	INTEGER_VAL ValueType = "INTEGER"
	FLOAT_VAL   ValueType = "FLOAT"
)

// Value is a number produced by evaluation: either an Integer or a Float.
// Values are plain Go values; every operator application makes a new one.
type Value interface {
	Type() ValueType
	Inspect() string
}

// Integer
type Integer struct {
	Value int64
}

func (i Integer) Type() ValueType { return INTEGER_VAL }
func (i Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

// Float
type Float struct {
	Value float64
}

func (f Float) Type() ValueType { return FLOAT_VAL }
func (f Float) Inspect() string  { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// ToFloat promotes v to float64.
func ToFloat(v Value) float64 {
	switch v := v.(type) {
	case Integer:
		return float64(v.Value)
	case Float:
		return v.Value
	default:
		return 0
	}
}

// IsZero reports whether v is a zero divisor: an integer equal to zero or a
// float whose magnitude is zero (so -0.0 counts).
func IsZero(v Value) bool {
	switch v := v.(type) {
	case Integer:
		return v.Value == 0
	case Float:
		return v.Value == 0
	default:
		return false
	}
}
