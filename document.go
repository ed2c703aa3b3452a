package interceptorcontent

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule validates a value and describes the same constraint in an
	// OpenAPI schema.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Ruler is implemented by payload types that bind rules to their fields.
	Ruler interface {
		Rules() []*FieldRules
	}

	// ValueRuler is implemented by non-struct types such as [Kind] that
	// carry their own rules. The rules apply wherever the type is used as
	// a struct field, both when validating and when generating schemas.
	ValueRuler interface {
		ValueRules() []Rule
	}

	// FieldRules binds a struct field pointer to its rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}
)

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
