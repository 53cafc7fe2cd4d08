package coerce

import (
	"math"
	"strconv"
)

// Key is a mapping key: either an integer or a string.
type Key struct {
	i     int64
	s     string
	isInt bool
}

// IntKey returns an integer key.
func IntKey(i int64) Key {
	return Key{i: i, isInt: true}
}

// StringKey returns a string key. It is not normalized: StringKey("1") and
// IntKey(1) are different keys.
func StringKey(s string) Key {
	return Key{s: s}
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool {
	return k.isInt
}

// Int returns the integer and true for integer keys.
func (k Key) Int() (int64, bool) {
	return k.i, k.isInt
}

// String returns the key as a string; integer keys in decimal.
func (k Key) String() string {
	if k.isInt {
		return strconv.FormatInt(k.i, 10)
	}
	return k.s
}

// Value returns the key as an int64 or a string.
func (k Key) Value() any {
	if k.isInt {
		return k.i
	}
	return k.s
}

// ArrayKey coerces a value to a [Key], normalizing numbers the way an
// integer-indexed map would: 1, 1.0, "1" and "1.0" all become IntKey(1),
// while 2.5 and "2.5" become StringKey("2.5"). Booleans, the empty sentinel,
// composites and non-finite numbers fail.
type ArrayKey struct{}

var _ predicate[Key] = ArrayKey{}

// Try returns the coerced key and true, or the zero Key and false.
func (c ArrayKey) Try(v any) (Key, bool) {
	return try[Key](c, v)
}

// OrNull is like Try, but the empty sentinel (nil or "") gives (nil, true).
func (c ArrayKey) OrNull(v any) (*Key, bool) {
	return orNull[Key](c, v)
}

// OrFail is like Try, but reports failure as an [*Error].
func (c ArrayKey) OrFail(v any) (Key, error) {
	return orFail[Key](c, v)
}

// Must is like OrFail but panics on error.
func (c ArrayKey) Must(v any) Key {
	return must[Key](c, v)
}

func (c ArrayKey) target() Target {
	return TargetArrayKey
}

func (c ArrayKey) coerce(v value) (Key, *failure) {
	switch v.kind {
	case categoryInt:
		return IntKey(v.i), nil
	case categoryUint:
		if v.u > math.MaxInt64 {
			return StringKey(strconv.FormatUint(v.u, 10)), nil
		}
		return IntKey(int64(v.u)), nil
	case categoryFloat:
		if !finite(v.f) {
			return Key{}, fail(ReasonNonFinite)
		}
		if i, reason := floatToInt(v.f); reason == "" {
			return IntKey(i), nil
		}
		return StringKey(formatFloat(v.f)), nil
	case categoryString:
		if v.s == "" {
			return Key{}, fail(ReasonWrongShape)
		}
		if num, ok := parseNumber(v.s); ok {
			if num.isInt {
				return IntKey(num.i), nil
			}
			if i, reason := floatToInt(num.f); reason == "" {
				return IntKey(i), nil
			}
		}
		return StringKey(v.s), nil
	case categoryStringer:
		if k, ok := v.raw.(Key); ok {
			return k, nil
		}
	}
	return Key{}, fail(ReasonWrongShape)
}
