package coerce

import "strconv"

// String coerces scalars and [fmt.Stringer] values to a string.
//
// null becomes "", integers and floats their decimal form (NaN and the
// infinities become "NAN", "INF" and "-INF"), booleans "true" or "false".
// Slices, maps and other objects fail.
type String struct {
	// RejectBool makes booleans fail instead of becoming "true"/"false".
	RejectBool bool
}

var _ predicate[string] = String{}

// Try returns the coerced value and true, or "" and false.
func (c String) Try(v any) (string, bool) {
	return try[string](c, v)
}

// OrNull is like Try, but the empty sentinel (nil or "") gives (nil, true).
func (c String) OrNull(v any) (*string, bool) {
	return orNull[string](c, v)
}

// OrFail is like Try, but reports failure as an [*Error].
func (c String) OrFail(v any) (string, error) {
	return orFail[string](c, v)
}

// Must is like OrFail but panics on error.
func (c String) Must(v any) string {
	return must[string](c, v)
}

func (c String) target() Target {
	return TargetString
}

func (c String) coerce(v value) (string, *failure) {
	switch v.kind {
	case categoryNull:
		return "", nil
	case categoryString:
		return v.s, nil
	case categoryInt:
		return strconv.FormatInt(v.i, 10), nil
	case categoryUint:
		return strconv.FormatUint(v.u, 10), nil
	case categoryFloat:
		return formatFloat(v.f), nil
	case categoryBool:
		if c.RejectBool {
			return "", rejected(OptionRejectBool)
		}
		return strconv.FormatBool(v.b), nil
	case categoryStringer:
		return v.stringer.String(), nil
	}
	return "", fail(ReasonWrongShape)
}
