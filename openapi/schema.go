package openapi

import (
	ic "github.com/Gobd/interceptorcontent"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForValue generates an OpenAPI schema for value with the rules
// of [interceptorcontent.Ruler] and [interceptorcontent.ValueRuler] types
// applied.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return ic.NewSchemaRefForValue(value)
}
