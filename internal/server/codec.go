package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

// ErrMalformedResponse is returned when a response struct cannot be decoded.
var ErrMalformedResponse = errors.New("malformed evaluate response")

// ErrRemote is the cause used for a remote error whose cause is unknown.
var ErrRemote = errors.New("remote evaluation error")

const (
	typeInteger = "integer"
	typeFloat   = "float"
)

var causes = []error{
	evaluator.ErrUnexpectedToken,
	evaluator.ErrUnexpectedEOF,
	evaluator.ErrUnclosedParen,
	evaluator.ErrDivisionByZero,
	evaluator.ErrTrailingInput,
}

// EncodeOutcome converts an outcome to the response struct. Integers travel
// as decimal strings since struct numbers are doubles.
func EncodeOutcome(o evaluator.Outcome) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		"ok":   o.OK(),
		"text": strings.TrimSuffix(prettyprinter.Format(o), "\n"),
	}
	if !o.OK() {
		fields["position"] = o.Position()
		if o.Err.Cause != nil {
			fields["cause"] = o.Err.Cause.Error()
		}
		return structpb.NewStruct(fields)
	}

	switch v := o.Value.(type) {
	case evaluator.Integer:
		fields["type"] = typeInteger
		fields["int"] = strconv.FormatInt(v.Value, 10)
	case evaluator.Float:
		fields["type"] = typeFloat
		fields["float"] = v.Value
	default:
		return nil, fmt.Errorf("unsupported value type %T", o.Value)
	}
	return structpb.NewStruct(fields)
}

// DecodeOutcome rebuilds an outcome from a response struct.
func DecodeOutcome(s *structpb.Struct) (evaluator.Outcome, error) {
	f := s.GetFields()
	ok, found := f["ok"]
	if !found {
		return evaluator.Outcome{}, fmt.Errorf("%w: missing ok", ErrMalformedResponse)
	}

	if !ok.GetBoolValue() {
		pos := int(f["position"].GetNumberValue())
		if pos <= 0 {
			return evaluator.Outcome{}, fmt.Errorf("%w: missing position", ErrMalformedResponse)
		}
		return evaluator.Outcome{Err: &evaluator.Error{Pos: pos, Cause: causeFor(f["cause"].GetStringValue())}}, nil
	}

	switch t := f["type"].GetStringValue(); t {
	case typeInteger:
		n, err := strconv.ParseInt(f["int"].GetStringValue(), 10, 64)
		if err != nil {
			return evaluator.Outcome{}, fmt.Errorf("%w: bad int: %v", ErrMalformedResponse, err)
		}
		return evaluator.Outcome{Value: evaluator.Integer{Value: n}}, nil
	case typeFloat:
		return evaluator.Outcome{Value: evaluator.Float{Value: f["float"].GetNumberValue()}}, nil
	default:
		return evaluator.Outcome{}, fmt.Errorf("%w: unknown type %q", ErrMalformedResponse, t)
	}
}

func causeFor(msg string) error {
	for _, c := range causes {
		if c.Error() == msg {
			return c
		}
	}
	return ErrRemote
}
