package coerce

import "math"

// Int coerces a value to an int64 when no information is lost.
//
// Integral finite floats and fully numeric strings ("2", "2.0", "1e3") are
// accepted; "2.6", "2.0.1" and " 2" are not. Booleans become 0 or 1.
// The options are checked after the base conversion succeeds.
type Int struct {
	RejectBool     bool
	RejectZero     bool
	RejectNegative bool
}

var _ predicate[int64] = Int{}

// Try returns the coerced value and true, or 0 and false.
func (c Int) Try(v any) (int64, bool) {
	return try[int64](c, v)
}

// OrNull is like Try, but the empty sentinel (nil or "") gives (nil, true).
func (c Int) OrNull(v any) (*int64, bool) {
	return orNull[int64](c, v)
}

// OrFail is like Try, but reports failure as an [*Error].
func (c Int) OrFail(v any) (int64, error) {
	return orFail[int64](c, v)
}

// Must is like OrFail but panics on error.
func (c Int) Must(v any) int64 {
	return must[int64](c, v)
}

func (c Int) target() Target {
	return TargetInt
}

func (c Int) coerce(v value) (int64, *failure) {
	var n int64
	switch v.kind {
	case categoryInt:
		n = v.i
	case categoryUint:
		if v.u > math.MaxInt64 {
			return 0, fail(ReasonLossy)
		}
		n = int64(v.u)
	case categoryFloat:
		i, reason := floatToInt(v.f)
		if reason != "" {
			return 0, fail(reason)
		}
		n = i
	case categoryBool:
		if c.RejectBool {
			return 0, rejected(OptionRejectBool)
		}
		if v.b {
			n = 1
		}
	case categoryString:
		if v.s == "" {
			return 0, fail(ReasonWrongShape)
		}
		num, ok := parseNumber(v.s)
		if !ok {
			return 0, fail(ReasonOutOfVocabulary)
		}
		if num.isInt {
			n = num.i
			break
		}
		i, reason := floatToInt(num.f)
		if reason != "" {
			return 0, fail(reason)
		}
		n = i
	default:
		return 0, fail(ReasonWrongShape)
	}

	if c.RejectZero && n == 0 {
		return 0, rejected(OptionRejectZero)
	}
	if c.RejectNegative && n < 0 {
		return 0, rejected(OptionRejectNegative)
	}
	return n, nil
}
