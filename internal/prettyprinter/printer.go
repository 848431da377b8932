package prettyprinter

import (
	"io"
	"math"
	"strconv"

	"github.com/funvibe/calcx/internal/evaluator"
)

// ErrorPrefix starts every failure line.
const ErrorPrefix = "ERROR:"

// A float closer than this to a whole number prints as that whole number.
const integralTolerance = 1e-12

// Significant digits for non-integral floats, as in C's %.15g.
const floatPrecision = 15

// Format renders an outcome as one newline-terminated line:
// the value on success, ERROR:<pos> on failure.
func Format(o evaluator.Outcome) string {
	return string(AppendOutcome(nil, o))
}

// Fprint writes Format(o) to w.
func Fprint(w io.Writer, o evaluator.Outcome) error {
	_, err := w.Write(AppendOutcome(nil, o))
	return err
}

// AppendOutcome appends the rendered outcome to dst.
func AppendOutcome(dst []byte, o evaluator.Outcome) []byte {
	if !o.OK() {
		dst = append(dst, ErrorPrefix...)
		dst = strconv.AppendInt(dst, int64(o.Position()), 10)
		return append(dst, '\n')
	}
	dst = AppendValue(dst, o.Value)
	return append(dst, '\n')
}

// FormatValue renders a value without the trailing newline.
func FormatValue(v evaluator.Value) string {
	return string(AppendValue(nil, v))
}

func AppendValue(dst []byte, v evaluator.Value) []byte {
	switch v := v.(type) {
	case evaluator.Integer:
		return strconv.AppendInt(dst, v.Value, 10)
	case evaluator.Float:
		return appendFloat(dst, v.Value)
	default:
		return dst
	}
}

func appendFloat(dst []byte, x float64) []byte {
	switch {
	case math.IsNaN(x):
		return append(dst, "nan"...)
	case math.IsInf(x, 1):
		return append(dst, "inf"...)
	case math.IsInf(x, -1):
		return append(dst, "-inf"...)
	}

	r := math.Round(x)
	if math.Abs(x-r) < integralTolerance {
		if r >= math.MinInt64 && r < math.MaxInt64 {
			return strconv.AppendInt(dst, int64(r), 10)
		}
		// Whole but outside int64: spell out every digit.
		return strconv.AppendFloat(dst, r, 'f', -1, 64)
	}
	return strconv.AppendFloat(dst, x, 'g', floatPrecision, 64)
}
