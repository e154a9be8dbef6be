package ctyext_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/zclconf/go-cty/cty"
)

func TestToCtyValue(t *testing.T) {
	intptr := func(v int) *int { return &v }

	type nested struct {
		Variables map[string]string
	}
	type def struct {
		FunctionName string
		MemorySize   *int
		Layers       []string
		Environment  *nested
		KMSKeyARN    *string `name:"kms_key_arn"`
	}

	tests := []struct {
		name   string
		val    interface{}
		target cty.Type
		want   cty.Value
	}{
		{
			name:   "String",
			val:    "worker",
			target: cty.String,
			want:   cty.StringVal("worker"),
		},
		{
			name:   "NilPointer",
			val:    (*string)(nil),
			target: cty.String,
			want:   cty.NullVal(cty.String),
		},
		{
			name:   "Pointer",
			val:    intptr(128),
			target: cty.Number,
			want:   cty.NumberIntVal(128),
		},
		{
			name:   "EmptySlice",
			val:    []string{},
			target: cty.List(cty.String),
			want:   cty.ListValEmpty(cty.String),
		},
		{
			name:   "NilSlice",
			val:    []string(nil),
			target: cty.List(cty.String),
			want:   cty.NullVal(cty.List(cty.String)),
		},
		{
			name:   "Map",
			val:    map[string]string{"env": "prod"},
			target: cty.Map(cty.String),
			want:   cty.MapVal(map[string]cty.Value{"env": cty.StringVal("prod")}),
		},
		{
			name: "Struct",
			val: def{
				FunctionName: "worker",
				MemorySize:   intptr(512),
				Layers:       []string{"base"},
				Environment:  &nested{Variables: map[string]string{"DEBUG": "1"}},
			},
			target: ctyext.ImpliedType(reflect.TypeOf(def{}), ctyext.SnakeCase),
			want: cty.ObjectVal(map[string]cty.Value{
				"function_name": cty.StringVal("worker"),
				"memory_size":   cty.NumberIntVal(512),
				"layers":        cty.ListVal([]cty.Value{cty.StringVal("base")}),
				"environment": cty.ObjectVal(map[string]cty.Value{
					"variables": cty.MapVal(map[string]cty.Value{"DEBUG": cty.StringVal("1")}),
				}),
				"kms_key_arn": cty.NullVal(cty.String),
			}),
		},
		{
			name:   "StructZero",
			val:    def{FunctionName: "worker"},
			target: ctyext.ImpliedType(reflect.TypeOf(def{}), ctyext.SnakeCase),
			want: cty.ObjectVal(map[string]cty.Value{
				"function_name": cty.StringVal("worker"),
				"memory_size":   cty.NullVal(cty.Number),
				"layers":        cty.NullVal(cty.List(cty.String)),
				"environment": cty.NullVal(cty.Object(map[string]cty.Type{
					"variables": cty.Map(cty.String),
				})),
				"kms_key_arn": cty.NullVal(cty.String),
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctyext.ToCtyValue(tt.val, tt.target, ctyext.SnakeCase)
			if err != nil {
				t.Fatalf("ToCtyValue() = %v", err)
			}
			if !got.RawEquals(tt.want) {
				t.Errorf("ToCtyValue()\ngot  %#v\nwant %#v", got, tt.want)
			}
		})
	}
}

func TestToCtyValue_error(t *testing.T) {
	_, err := ctyext.ToCtyValue("hello", cty.Number, ctyext.SnakeCase)
	if err == nil {
		t.Error("ToCtyValue() = nil, want error")
	}
}

func TestFromCtyValue(t *testing.T) {
	type rule struct {
		FromPort   int
		CIDRBlocks []string `name:"cidr_blocks"`
	}
	type def struct {
		Name    *string
		Port    int
		Rules   []rule
		Tags    map[string]string
		Enabled bool
	}

	val := cty.ObjectVal(map[string]cty.Value{
		"name": cty.StringVal("web"),
		"port": cty.NumberIntVal(443),
		"rules": cty.ListVal([]cty.Value{
			cty.ObjectVal(map[string]cty.Value{
				"from_port":   cty.NumberIntVal(443),
				"cidr_blocks": cty.ListVal([]cty.Value{cty.StringVal("0.0.0.0/0")}),
			}),
		}),
		"tags":    cty.NullVal(cty.Map(cty.String)),
		"enabled": cty.True,
	})

	got := &def{}
	if err := ctyext.FromCtyValue(val, got, ctyext.SnakeCase); err != nil {
		t.Fatalf("FromCtyValue() = %v", err)
	}

	name := "web"
	want := &def{
		Name:    &name,
		Port:    443,
		Rules:   []rule{{FromPort: 443, CIDRBlocks: []string{"0.0.0.0/0"}}},
		Enabled: true,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("FromCtyValue() (-got +want)\n%s", diff)
	}
}

func TestFromCtyValue_null(t *testing.T) {
	var s string
	if err := ctyext.FromCtyValue(cty.NullVal(cty.String), &s, ctyext.SnakeCase); err != nil {
		t.Fatalf("FromCtyValue() = %v", err)
	}
	if s != "" {
		t.Errorf("FromCtyValue() target = %q, want zero value", s)
	}
}

func TestFromCtyValue_error(t *testing.T) {
	var n int
	err := ctyext.FromCtyValue(cty.StringVal("hello"), &n, ctyext.SnakeCase)
	if err == nil {
		t.Error("FromCtyValue() = nil, want error")
	}
	var perr ctyext.PathError
	if !asPathError(err, &perr) {
		t.Errorf("FromCtyValue() = %T, want PathError", err)
	}
}

func asPathError(err error, target *ctyext.PathError) bool {
	pe, ok := err.(ctyext.PathError)
	if ok {
		*target = pe
	}
	return ok
}
