package interceptorcontent

import (
	"reflect"
)

// MissingRules returns the json names of exported fields of structPtr that
// no rule in its Rules() covers. Fields tagged json:"-" and names listed in
// exclude are skipped. Use it in tests to catch payload fields added
// without documentation:
//
//	assert.Empty(t, MissingRules(&CachePayload{}))
func MissingRules(structPtr any, exclude ...string) []string {
	r, ok := structPtr.(Ruler)
	if !ok {
		return nil
	}
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))

	covered := map[string]bool{}
	for _, fr := range r.Rules() {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Pointer {
			continue
		}
		if sf := findStructField(structVal, fv); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	skip := map[string]bool{}
	for _, e := range exclude {
		skip[e] = true
	}

	var missing []string
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || jsonName(sf) == "-" {
			continue
		}
		key := fieldKey(sf)
		if skip[key] || skip[sf.Name] || covered[key] {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}

// fieldKey returns the json name of sf, falling back to the Go field name.
func fieldKey(sf reflect.StructField) string {
	if name := jsonName(sf); name != "" && name != "-" {
		return name
	}
	return sf.Name
}
