package evaluator

import (
	"errors"
	"math"
	"testing"
)

func TestEvalSuccess(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"2 + 3 * 4", Integer{Value: 14}},
		{"2 ** 3 ** 2", Float{Value: 512}},
		{"-2 ** 2", Float{Value: 4}},
		{"(-2) ** 2", Float{Value: 4}},
		{"-(2 ** 2)", Float{Value: -4}},
		{"2 ** -1", Float{Value: 0.5}},
		{"(2 + 3) * 4", Integer{Value: 20}},
		{"10 - 4 - 3", Integer{Value: 3}},
		{"100 / 10 / 5", Float{Value: 2}},
		{"7 / 2", Float{Value: 3.5}},
		{"6 / 3", Float{Value: 2}},
		{"--5", Integer{Value: 5}},
		{"+-+5", Integer{Value: -5}},
		{"-(3)", Integer{Value: -3}},
		{"1.5 + 1", Float{Value: 2.5}},
		{"2 * 0.5", Float{Value: 1}},
		{"2 ** 3", Float{Value: 8}},
		{"4 ** 0.5", Float{Value: 2}},
		{"1e3 / 10", Float{Value: 100}},
		{"(((1)))", Integer{Value: 1}},
		{"# c\n1+1\n# d\n", Integer{Value: 2}},
		{"9223372036854775807 + 1", Integer{Value: math.MinInt64}},
		{"9223372036854775808 - 1", Float{Value: 9223372036854775808}},
		{"-0.0", Float{Value: math.Copysign(0, -1)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval([]byte(tt.input))
			if err != nil {
				t.Fatalf("Eval(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Eval(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		cause error
	}{
		{"10 / 0", 4, ErrDivisionByZero},
		{"10 / 0.0", 4, ErrDivisionByZero},
		{"10 / -0.0", 4, ErrDivisionByZero},
		{"1 / (2 - 2)", 3, ErrDivisionByZero},
		{"1 / 0 / 0", 3, ErrDivisionByZero},
		{"(1 / 0", 4, ErrDivisionByZero},
		{"1 / 0 + $", 3, ErrDivisionByZero},
		{"(1 + 2", 7, ErrUnclosedParen},
		{"(1 2)", 4, ErrUnclosedParen},
		{"# comment only\n", 16, ErrUnexpectedEOF},
		{"", 1, ErrUnexpectedEOF},
		{"1 +", 4, ErrUnexpectedEOF},
		{"1 +\n\n", 6, ErrUnexpectedEOF},
		{"1 + * 2", 5, ErrUnexpectedToken},
		{"$", 1, ErrUnexpectedToken},
		{"$ / 0", 1, ErrUnexpectedToken},
		{")", 1, ErrUnexpectedToken},
		{"2 ** )", 6, ErrUnexpectedToken},
		{"ab\n5", 1, ErrUnexpectedToken},
		{"2 3", 3, ErrTrailingInput},
		{"1 $ 2", 3, ErrTrailingInput},
		{"(1))", 4, ErrTrailingInput},
		{"1\n\n)", 4, ErrTrailingInput},
		{"# é\n)", 6, ErrUnexpectedToken},
		{"# é\n1 / 0", 8, ErrDivisionByZero},
		{"1 + é", 5, ErrUnexpectedToken},
		{"1 + \xff", 5, ErrUnexpectedToken},
		{"0x10", 2, ErrTrailingInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Eval([]byte(tt.input))
			if err == nil {
				t.Fatalf("Eval(%q) = %v, want error", tt.input, v)
			}
			var evalErr *Error
			if !errors.As(err, &evalErr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if evalErr.Pos != tt.pos {
				t.Errorf("Eval(%q) error pos = %d, want %d (%v)", tt.input, evalErr.Pos, tt.pos, err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Eval(%q) cause = %v, want %v", tt.input, evalErr.Cause, tt.cause)
			}
		})
	}
}

func TestEvaluateOutcome(t *testing.T) {
	ok := Evaluate([]byte("1 + 1"))
	if !ok.OK() || ok.Position() != 0 {
		t.Fatalf("unexpected failure: %+v", ok)
	}
	if ok.Value != (Integer{Value: 2}) {
		t.Fatalf("Value = %#v, want Integer 2", ok.Value)
	}

	bad := Evaluate([]byte("1 +"))
	if bad.OK() {
		t.Fatalf("expected failure")
	}
	if bad.Value != nil {
		t.Fatalf("failed outcome carries a value: %#v", bad.Value)
	}
	if bad.Position() != 4 {
		t.Fatalf("Position() = %d, want 4", bad.Position())
	}
}

func TestRunIsIdempotent(t *testing.T) {
	inputs := []string{"2 ** 3 ** 2", "(1 + 2", "1 / 0", "# only\n"}
	for _, in := range inputs {
		e := New([]byte(in))
		v1, err1 := e.Run()
		v2, err2 := e.Run()
		if v1 != v2 {
			t.Errorf("%q: values differ: %v vs %v", in, v1, v2)
		}
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("%q: errors differ: %v vs %v", in, err1, err2)
		}
		if err1 != nil && err1.Error() != err2.Error() {
			t.Errorf("%q: errors differ: %v vs %v", in, err1, err2)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Eval([]byte("1 + $"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `unexpected token at position 5 (found "$")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	_, err = Eval([]byte("(1"))
	want = "missing closing parenthesis at position 3"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}

func TestDeepNesting(t *testing.T) {
	const depth = 5000
	src := make([]byte, 0, 2*depth+1)
	for i := 0; i < depth; i++ {
		src = append(src, '(')
	}
	src = append(src, '7')
	for i := 0; i < depth; i++ {
		src = append(src, ')')
	}
	got, err := Eval(src)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != (Integer{Value: 7}) {
		t.Fatalf("got %#v, want Integer 7", got)
	}
}
