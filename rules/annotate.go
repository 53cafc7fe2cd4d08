package rules

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// annotation is a documentation-only rule.
type annotation func(ref *openapi3.SchemaRef)

func (r annotation) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r(ref)
	return nil
}

func (r annotation) Validate(_ any) error {
	return nil
}

// Default returns a documentation-only rule that sets the schema default,
// the value a handler substitutes when the parameter is absent.
func Default(a any) Rule {
	return annotation(func(ref *openapi3.SchemaRef) {
		ref.Value.Default = a
	})
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return annotation(func(ref *openapi3.SchemaRef) {
		ref.Value.Example = ex
	})
}

// Deprecate returns a documentation-only rule that marks the value as deprecated.
func Deprecate() Rule {
	return annotation(func(ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	})
}
