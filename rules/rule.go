package rules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/madison-web-solutions/coerce"
)

type (
	// Rule validates a value and describes what it accepts in an OpenAPI schema.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// ValidationErrors is a map of field names to their validation errors.
	// It is an alias for [validation.Errors] from ozzo-validation.
	ValidationErrors = validation.Errors
)

// coercible is the rule behind every constructor in this package.
type coercible struct {
	check func(any) error
	desc  string
	// accepts returns one fresh single-type schema per accepted JSON type.
	accepts func() []*openapi3.Schema
}

var _ validation.Rule = coercible{}

func (r coercible) Validate(value any) error {
	if coerce.IsEmpty(value) {
		return nil
	}
	return r.check(value)
}

// Describe documents the accepted types as anyOf, one nullable schema per
// type, which OpenAPI 3.0 allows where a list of types is not.
func (r coercible) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.AnyOf = nil
	for _, s := range r.accepts() {
		ref.Value.AnyOf = append(ref.Value.AnyOf, openapi3.NewSchemaRef("", s.WithNullable()))
	}
	appendDescription(ref, r.desc)
	return nil
}

func checkWith[T any](orFail func(any) (T, error)) func(any) error {
	return func(value any) error {
		_, err := orFail(value)
		return err
	}
}

// String returns a rule accepting any value c can coerce to a string.
func String(c coerce.String) Rule {
	desc := "coercible to string"
	if c.RejectBool {
		desc += ", booleans rejected"
	}
	return coercible{
		check: checkWith(c.OrFail),
		desc:  desc,
		accepts: func() []*openapi3.Schema {
			out := []*openapi3.Schema{openapi3.NewStringSchema(), openapi3.NewFloat64Schema()}
			if !c.RejectBool {
				out = append(out, openapi3.NewBoolSchema())
			}
			return out
		},
	}
}

// Int returns a rule accepting any value c can coerce to an integer.
func Int(c coerce.Int) Rule {
	desc := "coercible to int"
	if c.RejectBool {
		desc += ", booleans rejected"
	}
	if c.RejectZero {
		desc += ", non-zero"
	}
	return coercible{
		check: checkWith(c.OrFail),
		desc:  desc,
		accepts: func() []*openapi3.Schema {
			n := openapi3.NewInt64Schema()
			if c.RejectNegative {
				n = n.WithMin(0).WithExclusiveMin(c.RejectZero)
			}
			out := []*openapi3.Schema{n, openapi3.NewStringSchema()}
			if !c.RejectBool {
				out = append(out, openapi3.NewBoolSchema())
			}
			return out
		},
	}
}

// Float returns a rule accepting any value c can coerce to a finite float.
func Float(c coerce.Float) Rule {
	desc := "coercible to finite float"
	if c.RejectBool {
		desc += ", booleans rejected"
	}
	return coercible{
		check: checkWith(c.OrFail),
		desc:  desc,
		accepts: func() []*openapi3.Schema {
			n := openapi3.NewFloat64Schema()
			n.Format = "double"
			out := []*openapi3.Schema{n, openapi3.NewStringSchema()}
			if !c.RejectBool {
				out = append(out, openapi3.NewBoolSchema())
			}
			return out
		},
	}
}

// Bool returns a rule accepting 0, 1, booleans and the boolean tokens.
// The tokens are listed as the string enum; they match in any case.
func Bool() Rule {
	c := coerce.Bool{}
	return coercible{
		check: checkWith(c.OrFail),
		desc:  "coercible to bool, tokens in any case",
		accepts: func() []*openapi3.Schema {
			truthy, falsy := c.Tokens()
			var tokens []any
			for _, tok := range truthy {
				tokens = append(tokens, tok)
			}
			for _, tok := range falsy {
				tokens = append(tokens, tok)
			}
			return []*openapi3.Schema{
				openapi3.NewBoolSchema(),
				openapi3.NewIntegerSchema().WithEnum(1, 0),
				openapi3.NewStringSchema().WithEnum(tokens...),
			}
		},
	}
}

// ArrayKey returns a rule accepting integers, integral floats and strings.
func ArrayKey() Rule {
	return coercible{
		check: checkWith(coerce.ArrayKey{}.OrFail),
		desc:  "coercible to array key",
		accepts: func() []*openapi3.Schema {
			return []*openapi3.Schema{openapi3.NewInt64Schema(), openapi3.NewFloat64Schema(), openapi3.NewStringSchema()}
		},
	}
}
