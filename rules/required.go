package rules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/madison-web-solutions/coerce"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required fails on the empty sentinel and marks the field as required in the
// parent schema. Other zero values pass: Required with Int accepts 0 unless
// RejectZero is set.
var Required Rule = requiredRule{validation.Required}

func (r requiredRule) Validate(value any) error {
	if !coerce.IsEmpty(value) {
		return nil
	}
	return r.RequiredRule.Validate(value)
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
