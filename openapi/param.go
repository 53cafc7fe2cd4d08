package openapi

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/madison-web-solutions/coerce/rules"
)

// Parameter locations.
const (
	InQuery  = openapi3.ParameterInQuery
	InPath   = openapi3.ParameterInPath
	InHeader = openapi3.ParameterInHeader
	InCookie = openapi3.ParameterInCookie
)

// Param is a request parameter checked by Rules. A parameter is required if
// Required is set, if Rules contains [rules.Required], or if it is in the path.
type Param struct {
	Name        string
	In          string
	Required    bool
	Description string
	Rules       []rules.Rule
}

func (p Param) allRules() []rules.Rule {
	if (p.Required || p.In == InPath) && !slices.Contains(p.Rules, rules.Required) {
		return append([]rules.Rule{rules.Required}, p.Rules...)
	}
	return p.Rules
}

// NewParameter documents p as an OpenAPI parameter.
func NewParameter(p Param) (*openapi3.ParameterRef, error) {
	switch p.In {
	case InQuery, InPath, InHeader, InCookie:
	default:
		return nil, fmt.Errorf("parameter %q: unknown location %q", p.Name, p.In)
	}

	parent := openapi3.NewObjectSchema()
	schema, err := rules.NewSchemaRef(p.Name, parent, p.allRules()...)
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
	}

	return &openapi3.ParameterRef{
		Value: &openapi3.Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    slices.Contains(parent.Required, p.Name),
			Schema:      schema,
		},
	}, nil
}

// Values collects the raw parameter values of ep from r, keyed by name.
// Absent parameters are nil and repeated ones are a []string, which no
// scalar rule accepts. pathValue looks up path parameters; if nil,
// [http.Request.PathValue] is used.
func (ep Endpoint) Values(r *http.Request, pathValue func(name string) string) map[string]any {
	if pathValue == nil {
		pathValue = r.PathValue
	}
	query := r.URL.Query()

	values := make(map[string]any, len(ep.Params))
	for _, p := range ep.Params {
		switch p.In {
		case InQuery:
			values[p.Name] = single(query[p.Name])
		case InHeader:
			values[p.Name] = single(r.Header.Values(p.Name))
		case InPath:
			values[p.Name] = pathValue(p.Name)
		case InCookie:
			if c, err := r.Cookie(p.Name); err == nil {
				values[p.Name] = c.Value
			}
		}
	}
	return values
}

func single(vs []string) any {
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return vs[0]
	}
	return vs
}

// Validate checks values, as returned by [Endpoint.Values], against the
// rules of each parameter. The error is a [rules.ValidationErrors].
func (ep Endpoint) Validate(values map[string]any) error {
	fields := make(map[string][]rules.Rule, len(ep.Params))
	for _, p := range ep.Params {
		fields[p.Name] = p.allRules()
	}
	return rules.Values(values, fields)
}
