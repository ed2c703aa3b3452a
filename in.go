package interceptorcontent

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// In accepts only the given values and documents them as an enum. A
// rejected value fails with "want one of 'a', 'b'", leaving the caller to
// say what was being looked up.
func In(values ...any) Rule {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = fmt.Sprintf("'%v'", v)
	}
	return enumRule{
		in:     validation.In(values...).Error("want one of " + strings.Join(names, ", ")),
		values: values,
	}
}

type enumRule struct {
	in     validation.InRule
	values []any
}

func (r enumRule) Validate(value any) error {
	return r.in.Validate(value)
}

func (r enumRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.values
	return nil
}
