package interceptorcontent

import (
	"reflect"
	"strings"
)

// Field binds rules to the struct field fieldPtr points at.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// findStructField returns the field of structVal whose address is fieldPtr.
// structVal must be addressable.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := 0; i < structVal.NumField(); i++ {
		fv := structVal.Field(i)
		if !fv.CanAddr() || fv.Addr().Pointer() != ptr {
			continue
		}
		if fv.Type() != fieldPtr.Elem().Type() {
			continue
		}
		sf := structVal.Type().Field(i)
		return &sf
	}
	return nil
}

// jsonName returns the json tag name of sf, or "" when the tag is absent.
func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	return name
}
