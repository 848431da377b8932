package calcx

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/calcx/internal/evaluator"
	"github.com/funvibe/calcx/internal/prettyprinter"
)

// Marshaller converts between Go numbers and calcx values.
type Marshaller struct{}

var defaultMarshaller = NewMarshaller()

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go number to a calcx value. Signed and unsigned
// integers become integers (unsigned values above MaxInt64 become floats);
// float32 and float64 become floats.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Value, error) {
	if val == nil {
		return nil, fmt.Errorf("cannot convert nil")
	}
	if v, ok := val.(evaluator.Value); ok {
		return v, nil
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("cannot convert nil %s", v.Type())
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return evaluator.Integer{Value: v.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := v.Uint(); u > math.MaxInt64 {
			return evaluator.Float{Value: float64(u)}, nil
		}
		return evaluator.Integer{Value: int64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return evaluator.Float{Value: v.Float()}, nil
	default:
		return nil, fmt.Errorf("unsupported type for conversion: %s", v.Type())
	}
}

// FromValue converts a calcx value to int64 or float64.
func (m *Marshaller) FromValue(val evaluator.Value) interface{} {
	switch v := val.(type) {
	case evaluator.Integer:
		return v.Value
	case evaluator.Float:
		return v.Value
	default:
		return nil
	}
}

// FormatNumber renders a Go number with the same rules used for results.
func FormatNumber(x interface{}) (string, error) {
	v, err := defaultMarshaller.ToValue(x)
	if err != nil {
		return "", err
	}
	return prettyprinter.FormatValue(v), nil
}
