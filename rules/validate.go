package rules

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks value against each rule in order and returns the first error.
func Validate(value any, rs ...Rule) error {
	return validation.Validate(value, convert(rs)...)
}

// Field binds a struct field pointer to rules for [validation.ValidateStruct].
func Field(fieldPtr any, rs ...Rule) *validation.FieldRules {
	return validation.Field(fieldPtr, convert(rs)...)
}

// Values validates a map of named values, such as decoded query parameters,
// against the rules registered for each name. Names without rules are ignored;
// names with rules but no value are validated as nil.
func Values(values map[string]any, fields map[string][]Rule) error {
	errs := ValidationErrors{}
	for name, rs := range fields {
		if err := Validate(values[name], rs...); err != nil {
			errs[name] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NewSchemaRef builds the schema of a single named value from its rules.
// Rules that document the parent, such as [Required], write to parent.
func NewSchemaRef(name string, parent *openapi3.Schema, rs ...Rule) (*openapi3.SchemaRef, error) {
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	for _, r := range rs {
		if err := r.Describe(name, parent, ref); err != nil {
			return nil, err
		}
	}
	return ref, nil
}

func convert(rs []Rule) []validation.Rule {
	out := make([]validation.Rule, len(rs))
	for i := range rs {
		out[i] = rs[i]
	}
	return out
}
