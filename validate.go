package interceptorcontent

import (
	"encoding/json"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate applies the rules of value. Payload types implementing
// [Ruler] are validated field by field; [ValueRuler] types have their
// rules applied to the value itself. Other values pass.
func Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	if r, ok := value.(Ruler); ok {
		return validation.ValidateStruct(value, convertFieldRules(r.Rules())...)
	}
	// A struct passed by value: its rules hang off the pointer type.
	if rv.Kind() == reflect.Struct {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if r, ok := ptr.Interface().(Ruler); ok {
			return validation.ValidateStruct(ptr.Interface(), convertFieldRules(r.Rules())...)
		}
	}

	if vr, ok := value.(ValueRuler); ok {
		for _, rule := range vr.ValueRules() {
			if err := rule.Validate(value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Verify type-checks a canonical body for kind k. The body is decoded into
// the payload type registered for k and that payload's rules are applied;
// keys the payload does not know are ignored. Kinds without a payload only
// need well-formed JSON.
//
// [IPs] passes a falsy ips value through, so IPs({"ips": ""}) yields
// {"ips":""}. Verify rejects that body with [ErrInvalidBody]: it is not a
// list of addresses.
func Verify(k Kind, body string) error {
	e, ok := registry[k]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKind, k)
	}
	if e.payload == nil {
		if !json.Valid([]byte(body)) {
			return fmt.Errorf("%w: %s body is not JSON", ErrInvalidBody, k)
		}
		return nil
	}

	dst := e.payload()
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidBody, k, err)
	}
	return Validate(dst)
}

// convertFieldRules translates FieldRules into ozzo's FieldRules.
func convertFieldRules(fields []*FieldRules) []*validation.FieldRules {
	out := make([]*validation.FieldRules, len(fields))
	for i, fr := range fields {
		rules := make([]validation.Rule, len(fr.rules))
		for j, r := range fr.rules {
			rules[j] = r
		}
		out[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return out
}
