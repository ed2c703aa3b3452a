package interceptorcontent

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	validation.RequiredRule
}

// Required rejects empty values and lists the field as required.
var Required = requiredRule{validation.Required}

func (requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	markRequired(schema, name)
	return nil
}

// markRequired adds name to the schema's required list once.
func markRequired(schema *openapi3.Schema, name string) {
	if name == "" {
		return
	}
	for _, n := range schema.Required {
		if n == name {
			return
		}
	}
	schema.Required = append(schema.Required, name)
}
