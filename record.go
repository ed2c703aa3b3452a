package interceptorcontent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Record is the set of fields a form collected for one interceptor.
type Record map[string]any

// recordOf returns a copy of content as a Record. Maps with string keys
// and structs (keyed by their json tags) are accepted; ok is false for
// anything else. Only top-level keys of the copy are ever replaced, so a
// shallow copy keeps the caller's value intact.
func recordOf(content any) (Record, bool) {
	switch c := content.(type) {
	case Record:
		return maps.Clone(c), true
	case map[string]any:
		return maps.Clone(c), true
	}

	rv := reflect.Indirect(reflect.ValueOf(content))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
	case reflect.Struct:
	default:
		return nil, false
	}

	rec := Record{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &rec,
	})
	if err != nil {
		return nil, false
	}
	if err := dec.Decode(content); err != nil {
		return nil, false
	}
	return rec, true
}

// serialize encodes v as compact JSON without HTML escaping or a trailing
// newline. The result is a string held in an any so normalizers can
// return it directly.
func serialize(v any) (any, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
