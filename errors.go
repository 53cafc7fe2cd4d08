package coerce

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidArgument is matched by every error returned from an OrFail form.
var ErrInvalidArgument = errors.New("invalid argument")

// Target names the type a coercer produces.
type Target string

const (
	TargetString   Target = "string"
	TargetInt      Target = "int"
	TargetFloat    Target = "float"
	TargetBool     Target = "bool"
	TargetArrayKey Target = "array key"
)

// Reason says why a value could not be coerced.
type Reason string

const (
	// ReasonWrongShape is used for the empty sentinel, composites and
	// objects a coercer cannot take.
	ReasonWrongShape Reason = "wrong-shape"
	// ReasonNonFinite is used for NaN and infinities where a finite value is required.
	ReasonNonFinite Reason = "non-finite"
	// ReasonLossy is used when the conversion would drop information.
	ReasonLossy Reason = "lossy"
	// ReasonOutOfVocabulary is used for strings that are not numeric or not
	// boolean tokens, and for numbers other than 0 and 1 given to [Bool].
	ReasonOutOfVocabulary Reason = "out-of-vocabulary"
	// ReasonRejectedByOption is used when an option excludes the value.
	ReasonRejectedByOption Reason = "rejected-by-option"
)

// Option names as reported in [Error.Option].
const (
	OptionRejectBool     = "reject_bool"
	OptionRejectZero     = "reject_zero"
	OptionRejectNegative = "reject_negative"
)

const defaultMessage = "cannot coerce {{.input}} to {{.target}} ({{.reason}}{{if .option}}: {{.option}}{{end}})"

// Error describes a failed coercion. It implements validation.Error.
type Error struct {
	Input  string
	Target Target
	Reason Reason
	Option string

	message string
	params  map[string]any
}

var _ validation.Error = (*Error)(nil)

func newError(in any, target Target, f *failure) *Error {
	return &Error{
		Input:  describe(in),
		Target: target,
		Reason: f.reason,
		Option: f.option,
	}
}

func (e *Error) Error() string {
	return validation.NewError(e.Code(), e.Message()).SetParams(e.Params()).Error()
}

// Is makes errors.Is(err, ErrInvalidArgument) true.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Code returns the translation code, e.g. "coerce_lossy".
func (e *Error) Code() string {
	return "coerce_" + strings.ReplaceAll(string(e.Reason), "-", "_")
}

func (e *Error) Message() string {
	if e.message == "" {
		return defaultMessage
	}
	return e.message
}

func (e *Error) SetMessage(message string) validation.Error {
	cp := *e
	cp.message = message
	return &cp
}

// Params returns the template parameters: input, target, reason and option,
// plus any set with SetParams.
func (e *Error) Params() map[string]any {
	params := map[string]any{
		"input":  e.Input,
		"target": string(e.Target),
		"reason": string(e.Reason),
		"option": e.Option,
	}
	for k, v := range e.params {
		params[k] = v
	}
	return params
}

func (e *Error) SetParams(params map[string]any) validation.Error {
	cp := *e
	cp.params = params
	return &cp
}

// failure is what a coercer's predicate reports instead of a value.
type failure struct {
	reason Reason
	option string
}

func fail(reason Reason) *failure {
	return &failure{reason: reason}
}

func rejected(option string) *failure {
	return &failure{reason: ReasonRejectedByOption, option: option}
}

const maxDescribeLen = 20

// describe renders v for error messages, as concisely as possible.
func describe(v any) string {
	c := classify(v)
	switch c.kind {
	case categoryNull:
		return "NULL"
	case categoryBool:
		if c.b {
			return "TRUE"
		}
		return "FALSE"
	case categoryInt:
		return strconv.FormatInt(c.i, 10)
	case categoryUint:
		return strconv.FormatUint(c.u, 10)
	case categoryFloat:
		return formatFloat(c.f)
	case categoryString:
		return "'" + truncate(c.s) + "'"
	case categoryStringer:
		return fmt.Sprintf("%T %s", c.raw, truncate(c.stringer.String()))
	}

	rv := reflect.ValueOf(c.raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "{" + describeEntries(rv) + "}"
	}
	return fmt.Sprintf("%T", c.raw)
}

// describeEntries lists "key: value" pairs of a slice, array or map. Map keys
// are sorted so the description does not depend on iteration order.
func describeEntries(rv reflect.Value) string {
	var parts []string
	if rv.Kind() == reflect.Map {
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			parts = append(parts, describe(k.Interface())+": "+describe(rv.MapIndex(k).Interface()))
		}
	} else {
		for i := range rv.Len() {
			parts = append(parts, strconv.Itoa(i)+": "+describe(rv.Index(i).Interface()))
		}
	}
	return truncate(strings.Join(parts, ", "))
}

// truncate cuts s to at most maxDescribeLen bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxDescribeLen {
		return s
	}
	cut := maxDescribeLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
