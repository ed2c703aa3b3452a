package openapi_test

import (
	"context"
	"net/http"
	"testing"

	ic "github.com/Gobd/interceptorcontent"
	"github.com/Gobd/interceptorcontent/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptorDocument(t *testing.T) {
	doc, err := openapi.InterceptorDocument("2.0.0")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	assert.Equal(t, "2.0.0", doc.Info.Version)

	for _, k := range ic.Kinds() {
		_, hasPayload := ic.Payload(k)
		item := doc.Paths.Value("/interceptors/" + string(k))
		if !hasPayload {
			assert.Nil(t, item, "kind %s has no payload", k)
			continue
		}
		require.NotNil(t, item, "kind %s", k)
		require.NotNil(t, item.Post)
		require.NotNil(t, item.Post.RequestBody)
		assert.True(t, item.Post.RequestBody.Value.Required)
		assert.NotNil(t, item.Post.Responses.Value("201"))

		update := doc.Paths.Value("/interceptors/" + string(k) + "/{id}")
		require.NotNil(t, update)
		require.NotNil(t, update.Put)
		require.Len(t, update.Put.Parameters, 1)
		assert.Equal(t, "id", update.Put.Parameters[0].Value.Name)
	}
}

func TestInterceptorDocumentSchemas(t *testing.T) {
	doc, err := openapi.InterceptorDocument("1.0.0")
	require.NoError(t, err)

	schemaFor := func(path string) map[string]any {
		t.Helper()
		mt := doc.Paths.Value(path).Post.RequestBody.Value.Content.Get("application/json")
		require.NotNil(t, mt)
		props := map[string]any{}
		for name, ref := range mt.Schema.Value.Properties {
			props[name] = ref.Value
		}
		props["$required"] = mt.Schema.Value.Required
		return props
	}

	cache := schemaFor("/interceptors/cache")
	assert.Contains(t, cache, "headers")
	assert.Contains(t, cache, "queryParams")
	assert.Empty(t, cache["$required"])

	masker := schemaFor("/interceptors/log_masker")
	assert.Equal(t, []string{"ignoredHeaders"}, masker["$required"])

	writer := schemaFor("/interceptors/log_writer")
	assert.ElementsMatch(t, []string{"body", "uri", "headers", "requiredHeaders"}, writer["$required"])
}

func TestNewRequest(t *testing.T) {
	_, err := openapi.NewRequest()
	require.Error(t, err)

	one, err := openapi.NewRequest(ic.IPsPayload{})
	require.NoError(t, err)
	schema := one.Value.Content.Get("application/json").Schema.Value
	assert.Empty(t, schema.OneOf)
	assert.Contains(t, schema.Properties, "ips")

	two, err := openapi.NewRequest(ic.IPsPayload{}, ic.CachePayload{})
	require.NoError(t, err)
	assert.Len(t, two.Value.Content.Get("application/json").Schema.Value.OneOf, 2)
}

func TestNewResponse(t *testing.T) {
	_, err := openapi.NewResponse(nil)
	require.Error(t, err)

	res, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "OK", Bodies: []any{ic.LogWriterPayload{}}},
		"404": {Desc: "missing"},
	})
	require.NoError(t, err)

	ok := res.Value("200")
	require.NotNil(t, ok)
	assert.Equal(t, "OK", *ok.Value.Description)
	assert.NotNil(t, ok.Value.Content.Get("application/json"))

	missing := res.Value("404")
	require.NotNil(t, missing)
	assert.Nil(t, missing.Value.Content)
}

func TestAddPathKeepsOtherMethods(t *testing.T) {
	doc := openapi.DocBase("gateway", "", "1")
	require.NoError(t, openapi.Post(doc, "/x", "createX", openapi.Endpoint{Request: ic.IPsPayload{}}))
	require.NoError(t, openapi.Put(doc, "/x", "replaceX", openapi.Endpoint{Request: ic.IPsPayload{}}))

	item := doc.Paths.Value("/x")
	require.NotNil(t, item)
	assert.Equal(t, "createX", item.GetOperation(http.MethodPost).OperationID)
	assert.Equal(t, "replaceX", item.GetOperation(http.MethodPut).OperationID)
}
