package config

import (
	"reflect"
	"strings"

	"github.com/hashicorp/hcl2/hcldec"
	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/terrasynth/terrasynth/resource/schema"
)

// bodySpec derives the hcldec spec for a resource body from the input
// attributes of the resource schema. Struct attributes decode from nested
// blocks, slices of structs from repeated blocks, everything else from plain
// attributes.
func bodySpec(ff schema.FieldSet) hcldec.Spec {
	spec := make(hcldec.ObjectSpec, len(ff))
	for name, f := range ff {
		spec[name] = fieldSpec(name, f.Type, f.Required)
	}
	return spec
}

func fieldSpec(name string, t reflect.Type, required bool) hcldec.Spec {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch {
	case t.Kind() == reflect.Struct:
		return &hcldec.BlockSpec{
			TypeName: name,
			Nested:   structSpec(t),
			Required: required,
		}
	case t.Kind() == reflect.Slice && blockElem(t):
		return &hcldec.BlockListSpec{
			TypeName: name,
			Nested:   structSpec(elemStruct(t)),
		}
	default:
		return &hcldec.AttrSpec{
			Name:     name,
			Type:     ctyext.ImpliedType(t, ctyext.SnakeCase),
			Required: required,
		}
	}
}

// structSpec builds the spec for a nested block struct. Nested fields carry
// no func tag; required is taken from the validate tag instead.
func structSpec(t reflect.Type) hcldec.Spec {
	spec := make(hcldec.ObjectSpec, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := ctyext.SnakeCase(f)
		spec[name] = fieldSpec(name, f.Type, requiredRule(f.Tag.Get("validate")))
	}
	return spec
}

func requiredRule(rules string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == "required" {
			return true
		}
	}
	return false
}

func blockElem(t reflect.Type) bool {
	e := t.Elem()
	for e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	return e.Kind() == reflect.Struct
}

func elemStruct(t reflect.Type) reflect.Type {
	e := t.Elem()
	for e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	return e
}
