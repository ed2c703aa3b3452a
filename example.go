package interceptorcontent

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type example struct {
	value any
}

// Example returns a documentation-only rule that sets the schema example.
// List examples should be []any so the document validates.
func Example(v any) Rule {
	return example{value: v}
}

func (r example) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.value
	return nil
}

func (example) Validate(any) error {
	return nil
}
