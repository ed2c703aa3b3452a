package interceptorcontent

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type describe string

// Describe returns a documentation-only rule that appends desc to the
// field's schema description.
func Describe(desc string) Rule {
	return describe(desc)
}

func (r describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, string(r))
	return nil
}

func (describe) Validate(any) error {
	return nil
}
