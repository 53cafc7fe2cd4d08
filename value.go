package coerce

import (
	"database/sql/driver"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// category is the value category an input falls into before any coercer
// looks at it.
type category int

const (
	categoryNull category = iota
	categoryBool
	categoryInt
	categoryUint
	categoryFloat
	categoryString
	categoryStringer
	categoryComposite
)

// value is a classified input. Only the field matching kind is meaningful.
type value struct {
	kind     category
	b        bool
	i        int64
	u        uint64
	f        float64
	s        string
	stringer fmt.Stringer
	raw      any
}

// empty reports whether v is the empty sentinel: null or "".
func (v value) empty() bool {
	return v.kind == categoryNull || (v.kind == categoryString && v.s == "")
}

// IsEmpty reports whether v is the empty sentinel (nil, a nil pointer, a
// null driver.Valuer or the zero-length string).
func IsEmpty(v any) bool {
	return classify(v).empty()
}

var valuerType = reflect.TypeOf((*driver.Valuer)(nil)).Elem()

func classify(in any) value {
	switch v := in.(type) {
	case nil:
		return value{kind: categoryNull}
	case bool:
		return value{kind: categoryBool, b: v, raw: in}
	case int:
		return value{kind: categoryInt, i: int64(v), raw: in}
	case int64:
		return value{kind: categoryInt, i: v, raw: in}
	case int32:
		return value{kind: categoryInt, i: int64(v), raw: in}
	case float64:
		return value{kind: categoryFloat, f: v, raw: in}
	case float32:
		return value{kind: categoryFloat, f: float64(v), raw: in}
	case string:
		return value{kind: categoryString, s: v, raw: in}
	}

	// Named basic types (json.Number, type Status int, ...) are treated as
	// their underlying kind.
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Bool:
		return value{kind: categoryBool, b: rv.Bool(), raw: in}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value{kind: categoryInt, i: rv.Int(), raw: in}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value{kind: categoryUint, u: rv.Uint(), raw: in}
	case reflect.Float32, reflect.Float64:
		return value{kind: categoryFloat, f: rv.Float(), raw: in}
	case reflect.String:
		return value{kind: categoryString, s: rv.String(), raw: in}
	}

	// A pointer classifies as its target. Only a composite target falls back
	// to the pointer's own String method (pointer-receiver Stringers).
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return value{kind: categoryNull}
		}
		inner := classify(rv.Elem().Interface())
		if s, ok := in.(fmt.Stringer); ok && inner.kind == categoryComposite {
			return value{kind: categoryStringer, stringer: s, raw: in}
		}
		return inner
	}

	if s, ok := in.(fmt.Stringer); ok {
		return value{kind: categoryStringer, stringer: s, raw: in}
	}

	if rv.Type().Implements(valuerType) {
		inner, isNil := validation.Indirect(in)
		if isNil {
			return value{kind: categoryNull}
		}
		return classify(inner)
	}

	return value{kind: categoryComposite, raw: in}
}
