package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Bounds of int64 as float64. Both are exact powers of two.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// number is the value of a fully numeric string.
type number struct {
	isInt bool
	i     int64
	f     float64
}

// parseNumber parses s only if its entire content is a decimal integer or
// float literal. Surrounding whitespace, hex, digit separators and the
// words inf/nan are not numeric, nor is a literal that overflows float64.
func parseNumber(s string) (number, bool) {
	if s == "" {
		return number{}, false
	}
	if govalidator.IsInt(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return number{isInt: true, i: i, f: float64(i)}, true
		}
	}

	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" || body[0] == '+' || body[0] == '-' || !govalidator.IsFloat(body) {
		return number{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return number{}, false
	}
	return number{f: f}, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// floatToInt converts f only when no information is lost.
func floatToInt(f float64) (int64, Reason) {
	switch {
	case !finite(f):
		return 0, ReasonNonFinite
	case f != math.Trunc(f):
		return 0, ReasonLossy
	case f < minInt64Float || f >= maxInt64Float:
		return 0, ReasonLossy
	}
	return int64(f), ""
}

// intToFloat converts i only when float64 represents it exactly.
func intToFloat(i int64) (float64, Reason) {
	f := float64(i)
	if f >= maxInt64Float || int64(f) != i {
		return 0, ReasonLossy
	}
	return f, ""
}

// textToFloat converts a parsed numeric string. Integer literals must be
// exact, like native integers; other decimal text rounds to the nearest float64.
func textToFloat(s string, num number) (float64, Reason) {
	if num.isInt {
		return intToFloat(num.i)
	}
	if govalidator.IsInt(s) && strconv.FormatFloat(num.f, 'f', 0, 64) != strings.TrimPrefix(s, "+") {
		return 0, ReasonLossy
	}
	return num.f, ""
}

func uintToFloat(u uint64) (float64, Reason) {
	f := float64(u)
	if f >= 1<<64 || uint64(f) != u {
		return 0, ReasonLossy
	}
	return f, ""
}

// formatFloat renders f as the shortest decimal that reads back as f.
// Very large and very small magnitudes use exponent form, e.g. 1.0E+15.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-4 && abs < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "E" + sign + digits
}
