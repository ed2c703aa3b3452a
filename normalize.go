package interceptorcontent

import (
	"github.com/Gobd/interceptorcontent/commalist"
)

// Field names with comma-list values.
const (
	fieldHeaders        = "headers"
	fieldQueryParams    = "queryParams"
	fieldIPs            = "ips"
	fieldIgnoredHeaders = "ignoredHeaders"
)

// Func normalizes form content for one interceptor kind. The result is
// either content itself, when content is falsy, or its JSON body as a
// string. The only error is a serialization failure.
type Func func(content any) (any, error)

// Cache normalizes cache interceptor content. "headers" and "queryParams"
// are split into lists when they are strings and dropped when they are
// falsy or missing.
func Cache(content any) (any, error) {
	return withRecord(content, func(rec Record) {
		for _, key := range []string{fieldHeaders, fieldQueryParams} {
			if IsFalsy(rec[key]) {
				delete(rec, key)
				continue
			}
			splitField(rec, key)
		}
	})
}

// IPs normalizes IP allow/deny list content. "ips" is split into a list
// when it is a non-empty string and otherwise left alone.
func IPs(content any) (any, error) {
	return withRecord(content, func(rec Record) {
		if !IsFalsy(rec[fieldIPs]) {
			splitField(rec, fieldIPs)
		}
	})
}

// LogMasker normalizes log masker content. "ignoredHeaders" is split into
// a list when it is a string and set to an empty list when falsy or
// missing, so the key is always present.
func LogMasker(content any) (any, error) {
	return withRecord(content, func(rec Record) {
		if IsFalsy(rec[fieldIgnoredHeaders]) {
			rec[fieldIgnoredHeaders] = []string{}
			return
		}
		splitField(rec, fieldIgnoredHeaders)
	})
}

// LogWriter ignores content and always returns the default log writer
// body, {"body":true,"uri":true,"headers":true,"requiredHeaders":["headerName"]}.
//
// TODO: build the body from content once the form exposes the log writer fields.
func LogWriter(_ any) (any, error) {
	return serialize(DefaultLogWriter())
}

// Stringify serializes truthy content as is.
func Stringify(content any) (any, error) {
	if IsFalsy(content) {
		return content, nil
	}
	return serialize(content)
}

// Simple returns content unchanged.
func Simple(content any) (any, error) {
	return content, nil
}

// withRecord runs apply on a copy of content and serializes the copy.
// Falsy content is returned as is and content that is not a record is
// serialized without changes.
func withRecord(content any, apply func(Record)) (any, error) {
	if IsFalsy(content) {
		return content, nil
	}
	rec, ok := recordOf(content)
	if !ok {
		return serialize(content)
	}
	apply(rec)
	return serialize(rec)
}

// splitField replaces a raw comma-list value at key with its tokens.
// Values that are not strings are left untouched.
func splitField(rec Record, key string) {
	l, ok := commalist.FromValue(rec[key])
	if !ok || !commalist.IsRaw(l) {
		return
	}
	rec[key] = []string(commalist.Split(l))
}
