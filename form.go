package coerce

// predicate is the single classify-then-transform step of a coercer. The
// calling conventions below are derived from it mechanically.
type predicate[T any] interface {
	coerce(v value) (T, *failure)
	target() Target
}

func try[T any](p predicate[T], in any) (T, bool) {
	out, f := p.coerce(classify(in))
	if f != nil {
		var zero T
		return zero, false
	}
	return out, true
}

func orNull[T any](p predicate[T], in any) (*T, bool) {
	v := classify(in)
	if v.empty() {
		return nil, true
	}
	out, f := p.coerce(v)
	if f != nil {
		return nil, false
	}
	return &out, true
}

func orFail[T any](p predicate[T], in any) (T, error) {
	out, f := p.coerce(classify(in))
	if f != nil {
		var zero T
		return zero, newError(in, p.target(), f)
	}
	return out, nil
}

func must[T any](p predicate[T], in any) T {
	out, err := orFail(p, in)
	if err != nil {
		panic(err)
	}
	return out
}
