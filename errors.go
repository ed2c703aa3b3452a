package interceptorcontent

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrUnknownKind is returned for interceptor kind names that have no normalizer.
	ErrUnknownKind = errors.New("unknown interceptor kind")

	// ErrSerialize wraps encoding failures, e.g. NaN values or reference cycles.
	ErrSerialize = errors.New("serialize content")

	// ErrInvalidBody is returned by Verify when a body is not JSON of the expected shape.
	ErrInvalidBody = errors.New("invalid interceptor body")
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors
