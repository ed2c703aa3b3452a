package interceptorcontent

import (
	"fmt"
	"strings"
)

// Kind names an interceptor type.
type Kind string

const (
	KindCache     Kind = "cache"
	KindIPs       Kind = "ips"
	KindLogMasker Kind = "log_masker"
	KindLogWriter Kind = "log_writer"
	KindStringify Kind = "stringify"
	KindSimple    Kind = "simple"
)

type kindEntry struct {
	normalize Func
	payload   func() any // nil when the body has no fixed shape
}

var kinds = []Kind{KindCache, KindIPs, KindLogMasker, KindLogWriter, KindStringify, KindSimple}

var registry = map[Kind]kindEntry{
	KindCache:     {Cache, func() any { return &CachePayload{} }},
	KindIPs:       {IPs, func() any { return &IPsPayload{} }},
	KindLogMasker: {LogMasker, func() any { return &LogMaskerPayload{} }},
	KindLogWriter: {LogWriter, func() any { return &LogWriterPayload{} }},
	KindStringify: {Stringify, nil},
	KindSimple:    {Simple, nil},
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ValueRules restricts Kind values to the known kinds.
func (k Kind) ValueRules() []Rule {
	allowed := make([]any, len(kinds))
	for i, known := range kinds {
		allowed[i] = known
	}
	return []Rule{Required, In(allowed...)}
}

// ParseKind resolves a kind name. Matching ignores case and surrounding
// space and treats '-' like '_', so "Log-Masker" is [KindLogMasker].
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if err := Validate(k); err != nil {
		return "", fmt.Errorf("%w %q, %w", ErrUnknownKind, s, err)
	}
	return k, nil
}

// Lookup returns the normalizer for k.
func Lookup(k Kind) (Func, bool) {
	e, ok := registry[k]
	if !ok {
		return nil, false
	}
	return e.normalize, true
}

// Normalize runs the normalizer registered for k on content.
func Normalize(k Kind, content any) (any, error) {
	fn, ok := Lookup(k)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, k)
	}
	return fn(content)
}

// Payload returns a new zero value of the canonical body type for k, for
// schema generation. ok is false for kinds whose body has no fixed shape.
func Payload(k Kind) (v any, ok bool) {
	e, found := registry[k]
	if !found || e.payload == nil {
		return nil, false
	}
	return e.payload(), true
}
