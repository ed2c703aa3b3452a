// Package interceptorcontent turns the fields collected by an interceptor
// form into the JSON body submitted to the gateway's interceptor API.
//
// Each interceptor kind has its own normalizer:
//
//	body, err := interceptorcontent.Cache(map[string]any{
//	    "headers":     "Accept, X-Tenant",
//	    "queryParams": "",
//	})
//	// body == `{"headers":["Accept","X-Tenant"]}`
//
// Normalizers never modify the record they are given. A falsy input (nil,
// "", false, zero) is returned unchanged so callers can tell "nothing to
// submit" apart from an empty body. Pick a normalizer by name with
// [ParseKind] and [Normalize].
//
// The canonical bodies are also described as Go types ([CachePayload],
// [IPsPayload], [LogMaskerPayload], [LogWriterPayload]) that carry
// [Ruler] rules. [Verify] type-checks a body against them and
// [NewSchemaRefForValue] renders them as OpenAPI schemas.
//
// Sub-packages:
//   - commalist – the raw/parsed comma-list value and its split transform
//   - openapi – OpenAPI document for the interceptor API request bodies
package interceptorcontent
