package openapi

import (
	"context"
	"fmt"
	"strings"

	ic "github.com/Gobd/interceptorcontent"
	"github.com/getkin/kin-openapi/openapi3"
)

// InterceptorDocument describes the interceptor API: for every kind with a
// canonical payload it registers POST /interceptors/{kind} to create an
// interceptor and PUT /interceptors/{kind}/{id} to replace one. The
// document is validated before it is returned.
func InterceptorDocument(version string) (*openapi3.T, error) {
	doc := DocBase("interceptors", "Interceptor configuration API", version)

	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithDescription("interceptor id").
			WithSchema(openapi3.NewStringSchema()),
	}

	for _, k := range ic.Kinds() {
		payload, ok := ic.Payload(k)
		if !ok {
			continue
		}
		name := operationName(k)
		collection := "/interceptors/" + string(k)

		err := Post(doc, collection, "create"+name, Endpoint{
			Summary: fmt.Sprintf("Create a %s interceptor", k),
			Request: payload,
			Responses: map[string]Response{
				"201": {Desc: "Interceptor created"},
				"400": {Desc: "Body rejected"},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		err = Put(doc, collection+"/{id}", "update"+name, Endpoint{
			Summary: fmt.Sprintf("Replace a %s interceptor", k),
			Params:  openapi3.Parameters{idParam},
			Request: payload,
			Responses: map[string]Response{
				"200": {Desc: "Interceptor updated"},
				"400": {Desc: "Body rejected"},
				"404": {Desc: "No such interceptor"},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
}

// operationName turns "log_masker" into "LogMaskerInterceptor".
func operationName(k ic.Kind) string {
	var b strings.Builder
	for _, part := range strings.Split(string(k), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	b.WriteString("Interceptor")
	return b.String()
}
