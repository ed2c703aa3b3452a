package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const contentTypeJSON = "application/json"

// Response describes an HTTP response and the body types it may carry.
// Bodies may be empty for responses without content.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes one API operation for [Post] and [Put].
type Endpoint struct {
	Summary     string
	Description string
	Params      openapi3.Parameters
	Request     any                 // single request body type
	Requests    []any               // several request body types (oneOf)
	Responses   map[string]Response // keyed by status code, e.g. "201"
}

// NewRequest generates a JSON request body schema from the given value
// types. More than one value produces a oneOf.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for _, v := range vs {
		ref, err := NewSchemaRefForValue(v)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithContent(openapi3.NewContentWithJSONSchemaRef(oneOf(refs)))
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponse creates an OpenAPI responses object keyed by status code.
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for code, r := range vs {
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Bodies) > 0 {
			refs := make(openapi3.SchemaRefs, 0, len(r.Bodies))
			for _, b := range r.Bodies {
				ref, err := NewSchemaRefForValue(b)
				if err != nil {
					return nil, err
				}
				refs = append(refs, ref)
			}
			resp.Content = openapi3.NewContentWithJSONSchemaRef(oneOf(refs))
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// oneOf returns the only ref, or a schema that is oneOf all of them.
func oneOf(refs openapi3.SchemaRefs) *openapi3.SchemaRef {
	if len(refs) == 1 {
		return refs[0]
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
}

// DocBase returns an empty OpenAPI 3.0.3 document.
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

// AddPath sets the operation for method on path, keeping other methods.
func AddPath(doc *openapi3.T, path, method string, op *openapi3.Operation) {
	p := doc.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	doc.Paths.Set(path, p)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
		Parameters:  ep.Params,
	}

	switch {
	case len(ep.Requests) > 0:
		body, err := NewRequest(ep.Requests...)
		if err != nil {
			return err
		}
		op.RequestBody = body
	case ep.Request != nil:
		body, err := NewRequest(ep.Request)
		if err != nil {
			return err
		}
		op.RequestBody = body
	}

	if len(ep.Responses) > 0 {
		responses, err := NewResponse(ep.Responses)
		if err != nil {
			return err
		}
		op.Responses = responses
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(doc, path, method, op)
	return nil
}

// Post registers a POST operation on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT operation on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPut, operationID, ep)
}
