package interceptorcontent

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForValue generates an OpenAPI schema for value. Rules from
// [Ruler] and [ValueRuler] types are applied to the generated properties.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(describeSchema))
	return g.NewSchemaRefForValue(value, nil)
}

// describeSchema is the openapi3gen customizer. It runs once per generated
// schema, so the properties of a Ruler struct already exist when the
// struct itself is visited.
func describeSchema(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	inst := reflect.New(t)
	r, ok := inst.Interface().(Ruler)
	if !ok {
		return describeValue(t, name, schema)
	}
	fields := r.Rules()
	if err := tagFields(fields, inst.Elem()); err != nil {
		return err
	}
	for prop, ref := range schema.Properties {
		for _, f := range fields {
			if f.tag != prop {
				continue
			}
			for _, rule := range f.rules {
				if err := rule.Describe(prop, schema, ref); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// describeValue applies the rules of a ValueRuler type to its own schema.
func describeValue(t reflect.Type, name string, schema *openapi3.Schema) error {
	vr, ok := reflect.New(t).Interface().(ValueRuler)
	if !ok {
		return nil
	}
	ref := &openapi3.SchemaRef{Value: schema}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// tagFields resolves the json name of every rule target in structVal.
func tagFields(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Pointer {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fr.tag = jsonName(*sf)
	}
	return nil
}
