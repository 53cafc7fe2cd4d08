package coerce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in    string
		want  number
		valid bool
	}{
		{in: "0", want: number{isInt: true, i: 0, f: 0}, valid: true},
		{in: "-12", want: number{isInt: true, i: -12, f: -12}, valid: true},
		{in: "+3", want: number{isInt: true, i: 3, f: 3}, valid: true},
		{in: "007", want: number{f: 7}, valid: true},
		{in: "2.5", want: number{f: 2.5}, valid: true},
		{in: "-.5", want: number{f: -0.5}, valid: true},
		{in: "5.", want: number{f: 5}, valid: true},
		{in: "1E-2", want: number{f: 0.01}, valid: true},
		{in: "9223372036854775808", want: number{f: 9223372036854775808}, valid: true},
		{in: ""},
		{in: "+"},
		{in: "+-1"},
		{in: "."},
		{in: "e5"},
		{in: "1e"},
		{in: " 1"},
		{in: "1 "},
		{in: "1,5"},
		{in: "0x10"},
		{in: "0b1"},
		{in: "1_0"},
		{in: "inf"},
		{in: "-Infinity"},
		{in: "NaN"},
		{in: "1e309"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseNumber(tt.in)
			require.Equal(t, tt.valid, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0"},
		{in: math.Copysign(0, -1), want: "-0"},
		{in: 2, want: "2"},
		{in: 2.5, want: "2.5"},
		{in: -1234.5678, want: "-1234.5678"},
		{in: 0.0001, want: "0.0001"},
		{in: 0.00001, want: "1.0E-5"},
		{in: 0.000012345, want: "1.2345E-5"},
		{in: 999999999999999, want: "999999999999999"},
		{in: 1e15, want: "1.0E+15"},
		{in: -2.5e20, want: "-2.5E+20"},
		{in: 1e300, want: "1.0E+300"},
		{in: math.NaN(), want: "NAN"},
		{in: math.Inf(1), want: "INF"},
		{in: math.Inf(-1), want: "-INF"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}

func TestFloatToInt(t *testing.T) {
	n, reason := floatToInt(-9223372036854775808)
	assert.Equal(t, Reason(""), reason)
	assert.Equal(t, int64(math.MinInt64), n)

	_, reason = floatToInt(9223372036854775808)
	assert.Equal(t, ReasonLossy, reason)

	_, reason = floatToInt(0.5)
	assert.Equal(t, ReasonLossy, reason)

	_, reason = floatToInt(math.NaN())
	assert.Equal(t, ReasonNonFinite, reason)
}

func TestIntToFloat(t *testing.T) {
	f, reason := intToFloat(1 << 53)
	assert.Equal(t, Reason(""), reason)
	assert.Equal(t, float64(1<<53), f)

	_, reason = intToFloat(1<<53 + 1)
	assert.Equal(t, ReasonLossy, reason)

	_, reason = intToFloat(math.MaxInt64)
	assert.Equal(t, ReasonLossy, reason)

	_, reason = uintToFloat(math.MaxUint64)
	assert.Equal(t, ReasonLossy, reason)

	f, reason = uintToFloat(1 << 63)
	assert.Equal(t, Reason(""), reason)
	assert.Equal(t, math.Ldexp(1, 63), f)
}

func TestTextToFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		reason Reason
	}{
		{in: "-0", want: 0},
		{in: "9007199254740992", want: 1 << 53},
		{in: "9007199254740993", reason: ReasonLossy},
		{in: "9223372036854775808", want: 1 << 63},
		{in: "9223372036854775809", reason: ReasonLossy},
		{in: "9007199254740993.0", want: 1 << 53},
		{in: "1e22", want: 1e22},
		{in: "0.1", want: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			num, ok := parseNumber(tt.in)
			require.True(t, ok)
			f, reason := textToFloat(tt.in, num)
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, tt.want, f)
		})
	}
}
