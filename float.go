package coerce

// Float coerces a value to a finite float64.
//
// NaN and the infinities are rejected as input. Integers, native or written
// as integer literals such as "9007199254740993", are accepted only when
// float64 holds them exactly. Text with a fraction or exponent ("0.1",
// "1e-3") rounds to the nearest float64. Booleans become 0.0 or 1.0.
type Float struct {
	RejectBool bool
}

var _ predicate[float64] = Float{}

// Try returns the coerced value and true, or 0 and false.
func (c Float) Try(v any) (float64, bool) {
	return try[float64](c, v)
}

// OrNull is like Try, but the empty sentinel (nil or "") gives (nil, true).
func (c Float) OrNull(v any) (*float64, bool) {
	return orNull[float64](c, v)
}

// OrFail is like Try, but reports failure as an [*Error].
func (c Float) OrFail(v any) (float64, error) {
	return orFail[float64](c, v)
}

// Must is like OrFail but panics on error.
func (c Float) Must(v any) float64 {
	return must[float64](c, v)
}

func (c Float) target() Target {
	return TargetFloat
}

func (c Float) coerce(v value) (float64, *failure) {
	switch v.kind {
	case categoryFloat:
		if !finite(v.f) {
			return 0, fail(ReasonNonFinite)
		}
		return v.f, nil
	case categoryInt:
		return wrap(intToFloat(v.i))
	case categoryUint:
		return wrap(uintToFloat(v.u))
	case categoryBool:
		if c.RejectBool {
			return 0, rejected(OptionRejectBool)
		}
		if v.b {
			return 1, nil
		}
		return 0, nil
	case categoryString:
		if v.s == "" {
			return 0, fail(ReasonWrongShape)
		}
		num, ok := parseNumber(v.s)
		if !ok {
			return 0, fail(ReasonOutOfVocabulary)
		}
		return wrap(textToFloat(v.s, num))
	}
	return 0, fail(ReasonWrongShape)
}

func wrap(f float64, reason Reason) (float64, *failure) {
	if reason != "" {
		return 0, fail(reason)
	}
	return f, nil
}
