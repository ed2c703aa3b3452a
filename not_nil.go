package interceptorcontent

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotNil requires a pointer, slice or map field to be set. Unlike
// [Required] it accepts false and empty lists, so it checks that a JSON
// key was present rather than that it has content.
var NotNil = notNilRule{validation.NotNil}

type notNilRule struct {
	validation.Rule
}

func (notNilRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = false
	markRequired(schema, name)
	return nil
}
