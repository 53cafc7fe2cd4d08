package openapi

import (
	"net/http"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Params      []Param
	Responses   map[string]string // status code (e.g. "200", "4xx") to description
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// NewOperation builds an [openapi3.Operation] from ep. Endpoints with
// parameters also document the 400 response their validation produces.
func NewOperation(operationID string, ep Endpoint) (*openapi3.Operation, error) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	for _, p := range ep.Params {
		ref, err := NewParameter(p)
		if err != nil {
			return nil, err
		}
		op.Parameters = append(op.Parameters, ref)
	}

	responses := map[string]string{}
	for code, desc := range ep.Responses {
		responses[code] = desc
	}
	if len(ep.Params) > 0 {
		if _, ok := responses["400"]; !ok {
			responses["400"] = "Invalid parameters"
		}
	}
	op.Responses = newResponses(responses)

	return op, nil
}

func newResponses(vs map[string]string) *openapi3.Responses {
	if len(vs) == 0 {
		return openapi3.NewResponses()
	}

	codes := make([]string, 0, len(vs))
	for code := range vs {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	opts := make([]openapi3.NewResponsesOption, 0, len(codes))
	for _, code := range codes {
		desc := vs[code]
		resp := &openapi3.Response{Description: &desc}
		if code == "400" {
			resp.Content = openapi3.NewContentWithJSONSchema(errorsSchema())
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}
	return openapi3.NewResponses(opts...)
}

// errorsSchema is the shape of rules.ValidationErrors as JSON: parameter
// names mapped to messages.
func errorsSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
}

// addEndpoint builds an operation from ep and registers it at path+method.
// It panics if a parameter cannot be described.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op, err := NewOperation(operationID, ep)
	if err != nil {
		panic(err)
	}
	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
