// Package openapi builds the OpenAPI 3 document for the gateway's
// interceptor API from the canonical payload types of
// [interceptorcontent].
//
// [InterceptorDocument] returns the whole document. The lower-level
// helpers compose documents by hand:
//
//	doc := openapi.DocBase("gateway", "Interceptor API", "1.0")
//	openapi.Post(doc, "/interceptors/cache", "createCacheInterceptor", openapi.Endpoint{
//	    Request: interceptorcontent.CachePayload{},
//	})
package openapi
