package interceptorcontent

// CachePayload is the canonical cache interceptor body.
type CachePayload struct {
	Headers     []string `json:"headers,omitempty"`
	QueryParams []string `json:"queryParams,omitempty"`
}

func (p *CachePayload) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.Headers, Describe("request headers that take part in the cache key"), Example([]any{"Accept", "X-Tenant"})),
		Field(&p.QueryParams, Describe("query parameters that take part in the cache key"), Example([]any{"page"})),
	}
}

// IPsPayload is the canonical IP allow/deny list body.
type IPsPayload struct {
	IPs []string `json:"ips,omitempty"`
}

func (p *IPsPayload) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.IPs, Describe("addresses matched against the caller"), Example([]any{"10.0.0.1", "10.0.0.2"})),
	}
}

// LogMaskerPayload is the canonical log masker body.
type LogMaskerPayload struct {
	IgnoredHeaders []string `json:"ignoredHeaders"`
}

func (p *LogMaskerPayload) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.IgnoredHeaders, NotNil, Describe("headers left out of masked logs"), Example([]any{"Authorization"})),
	}
}

// LogWriterPayload is the canonical log writer body. Field order matches
// the serialized form.
type LogWriterPayload struct {
	Body            *bool    `json:"body"`
	URI             *bool    `json:"uri"`
	Headers         *bool    `json:"headers"`
	RequiredHeaders []string `json:"requiredHeaders"`
}

func (p *LogWriterPayload) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&p.Body, NotNil, Describe("log the request body")),
		Field(&p.URI, NotNil, Describe("log the request URI")),
		Field(&p.Headers, NotNil, Describe("log the request headers")),
		Field(&p.RequiredHeaders, NotNil, Describe("headers that must be present to log"), Example([]any{"headerName"})),
	}
}

// DefaultLogWriter returns the body [LogWriter] always produces.
func DefaultLogWriter() *LogWriterPayload {
	on := func() *bool { b := true; return &b }
	return &LogWriterPayload{
		Body:            on(),
		URI:             on(),
		Headers:         on(),
		RequiredHeaders: []string{"headerName"},
	}
}
