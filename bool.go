package coerce

import "strings"

var (
	truthyTokens = []string{"1", "t", "true", "y", "yes"}
	falsyTokens  = []string{"0", "f", "false", "n", "no"}

	tokens = func() map[string]bool {
		m := make(map[string]bool, len(truthyTokens)+len(falsyTokens))
		for _, t := range truthyTokens {
			m[t] = true
		}
		for _, t := range falsyTokens {
			m[t] = false
		}
		return m
	}()
)

// Bool coerces a value to a strict boolean. Only the numbers 0 and 1 and
// the tokens 1/t/true/y/yes and 0/f/false/n/no (any case) are accepted.
// There is no general truthiness: "2", 2.5 and "on" all fail.
type Bool struct{}

var _ predicate[bool] = Bool{}

// Try returns the coerced value and true, or false and false.
func (c Bool) Try(v any) (bool, bool) {
	return try[bool](c, v)
}

// OrNull is like Try, but the empty sentinel (nil or "") gives (nil, true).
func (c Bool) OrNull(v any) (*bool, bool) {
	return orNull[bool](c, v)
}

// OrFail is like Try, but reports failure as an [*Error].
func (c Bool) OrFail(v any) (bool, error) {
	return orFail[bool](c, v)
}

// Must is like OrFail but panics on error.
func (c Bool) Must(v any) bool {
	return must[bool](c, v)
}

// Tokens returns the accepted lower-case string vocabulary.
func (c Bool) Tokens() (truthy, falsy []string) {
	return append([]string(nil), truthyTokens...), append([]string(nil), falsyTokens...)
}

func (c Bool) target() Target {
	return TargetBool
}

func (c Bool) coerce(v value) (bool, *failure) {
	switch v.kind {
	case categoryBool:
		return v.b, nil
	case categoryInt:
		return bitToBool(v.i == 0, v.i == 1)
	case categoryUint:
		return bitToBool(v.u == 0, v.u == 1)
	case categoryFloat:
		if !finite(v.f) {
			return false, fail(ReasonNonFinite)
		}
		return bitToBool(v.f == 0, v.f == 1)
	case categoryString:
		if v.s == "" {
			return false, fail(ReasonWrongShape)
		}
		b, ok := tokens[strings.ToLower(v.s)]
		if !ok {
			return false, fail(ReasonOutOfVocabulary)
		}
		return b, nil
	}
	return false, fail(ReasonWrongShape)
}

func bitToBool(zero, one bool) (bool, *failure) {
	switch {
	case zero:
		return false, nil
	case one:
		return true, nil
	}
	return false, fail(ReasonOutOfVocabulary)
}
