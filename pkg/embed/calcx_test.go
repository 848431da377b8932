package calcx_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calcx "github.com/funvibe/calcx/pkg/embed"
)

func TestEvaluate(t *testing.T) {
	o := calcx.EvaluateString("2 + 3 * 4")
	require.True(t, o.OK())
	assert.Equal(t, int64(14), o.Value())
	assert.False(t, o.IsFloat())
	assert.Equal(t, "14\n", calcx.Format(o))
	assert.Equal(t, "14", o.String())
	assert.NoError(t, o.Err())

	o = calcx.Evaluate([]byte("2 ** 3 ** 2"))
	require.True(t, o.OK())
	assert.True(t, o.IsFloat())
	assert.Equal(t, float64(512), o.Value())
	assert.Equal(t, "512", o.String())

	f, ok := o.Float64()
	assert.True(t, ok)
	assert.Equal(t, 512.0, f)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		src   string
		pos   int
		cause error
	}{
		{"10 / 0", 4, calcx.ErrDivisionByZero},
		{"(1 + 2", 7, calcx.ErrUnclosedParen},
		{"# comment only\n", 16, calcx.ErrUnexpectedEOF},
		{"1 2", 3, calcx.ErrTrailingInput},
		{"*", 1, calcx.ErrUnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			o := calcx.EvaluateString(tt.src)
			assert.False(t, o.OK())
			assert.Equal(t, tt.pos, o.Position())
			assert.Nil(t, o.Value())
			assert.True(t, errors.Is(o.Err(), tt.cause), "got %v", o.Err())
			_, ok := o.Float64()
			assert.False(t, ok)
		})
	}
}

func TestConcurrentEvaluate(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "-4", calcx.EvaluateString("-2 * (1 + 1)").String())
			}
		}()
	}
	wg.Wait()
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{42, "42"},
		{uint8(7), "7"},
		{uint64(math.MaxUint64), "18446744073709551616"},
		{2.5, "2.5"},
		{float32(0.5), "0.5"},
		{3.0000000000001, "3"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		got, err := calcx.FormatNumber(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := calcx.FormatNumber("12")
	assert.Error(t, err)
	_, err = calcx.FormatNumber(nil)
	assert.Error(t, err)
}

func TestMarshallerRoundTrip(t *testing.T) {
	m := calcx.NewMarshaller()
	v, err := m.ToValue(int32(-9))
	require.NoError(t, err)
	assert.Equal(t, int64(-9), m.FromValue(v))

	x := 1.25
	v, err = m.ToValue(&x)
	require.NoError(t, err)
	assert.Equal(t, 1.25, m.FromValue(v))
}
