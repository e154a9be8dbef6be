package ctyext

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// ImpliedType returns the cty type for a Go type. Pointers are unwrapped,
// structs become object types with attribute names chosen by fieldName.
//
// Interface and function fields cannot be represented in the cty type system
// and are skipped in structs. Panics for types that have no cty equivalent
// at the top level; resource schemas are static so this is a programmer
// error, not user input.
func ImpliedType(t reflect.Type, fieldName FieldNameFunc) cty.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return cty.Bool
	case reflect.String:
		return cty.String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return cty.Number
	case reflect.Slice, reflect.Array:
		return cty.List(ImpliedType(t.Elem(), fieldName))
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			panic(fmt.Sprintf("ctyext: map key must be string, not %s", t.Key().Kind()))
		}
		return cty.Map(ImpliedType(t.Elem(), fieldName))
	case reflect.Struct:
		attrs := make(map[string]cty.Type, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Type.Kind() == reflect.Interface || f.Type.Kind() == reflect.Func {
				continue
			}
			name := fieldName(f)
			if name == "" {
				continue
			}
			attrs[name] = ImpliedType(f.Type, fieldName)
		}
		return cty.Object(attrs)
	default:
		panic(fmt.Sprintf("ctyext: no cty type for %s", t))
	}
}
