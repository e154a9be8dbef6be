package resource

import (
	"reflect"

	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/terrasynth/terrasynth/resource/schema"
	"github.com/terrasynth/terrasynth/synth"
)

// Encode maps the input attributes of a definition onto a block.
//
// Definitions implementing BlockEncoder encode themselves. Everything else
// is encoded generically from the schema: scalar attributes become block
// attributes, struct attributes become nested blocks, slices of structs
// become repeated nested blocks and unset (zero) attributes are skipped.
func Encode(def Definition, b *synth.Block) error {
	if enc, ok := def.(BlockEncoder); ok {
		return enc.EncodeBlock(b)
	}
	v := reflect.Indirect(reflect.ValueOf(def))
	ff := schema.Fields(v.Type()).Inputs()
	for _, name := range ff.Names() {
		encodeField(b, name, v.Field(ff[name].Index))
	}
	// Conversion errors are already collected on the block.
	return nil
}

func encodeField(b *synth.Block, name string, v reflect.Value) {
	if schema.IsZero(v) {
		return
	}
	v = reflect.Indirect(v)
	switch {
	case v.Kind() == reflect.Struct:
		b.Block(name, func(nb *synth.Block) {
			encodeStruct(nb, v)
		})
	case v.Kind() == reflect.Slice && structElem(v.Type()):
		// List-typed attributes keep their array shape even with a
		// single element.
		for i := 0; i < v.Len(); i++ {
			elem := reflect.Indirect(v.Index(i))
			b.List(name, func(nb *synth.Block) {
				encodeStruct(nb, elem)
			})
		}
	default:
		b.Set(name, v.Interface())
	}
}

// encodeStruct encodes the exported fields of a nested block struct. Nested
// fields do not carry func tags; every exported field is an attribute.
func encodeStruct(b *synth.Block, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := ctyext.SnakeCase(f)
		if name == "" {
			continue
		}
		encodeField(b, name, v.Field(i))
	}
}

func structElem(t reflect.Type) bool {
	e := t.Elem()
	for e.Kind() == reflect.Ptr {
		e = e.Elem()
	}
	return e.Kind() == reflect.Struct
}
