package ctyext_test

import (
	"reflect"
	"testing"

	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/zclconf/go-cty/cty"
)

func TestImpliedType(t *testing.T) {
	type block struct {
		Mode string
	}
	type def struct {
		Name      *string
		Count     int
		Ratio     float64
		Enabled   bool
		Layers    []string
		Tags      map[string]string
		Tracing   *block
		Callback  func() // no cty equivalent, skipped
		S3Bucket  string `name:"s3_bucket"`
		Encrypted *bool
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want cty.Type
	}{
		{"String", reflect.TypeOf(""), cty.String},
		{"StringPtr", reflect.TypeOf((*string)(nil)), cty.String},
		{"Int", reflect.TypeOf(0), cty.Number},
		{"Float", reflect.TypeOf(0.0), cty.Number},
		{"Bool", reflect.TypeOf(false), cty.Bool},
		{"Slice", reflect.TypeOf([]string{}), cty.List(cty.String)},
		{"Map", reflect.TypeOf(map[string]int{}), cty.Map(cty.Number)},
		{
			"Struct",
			reflect.TypeOf(def{}),
			cty.Object(map[string]cty.Type{
				"name":      cty.String,
				"count":     cty.Number,
				"ratio":     cty.Number,
				"enabled":   cty.Bool,
				"layers":    cty.List(cty.String),
				"tags":      cty.Map(cty.String),
				"tracing":   cty.Object(map[string]cty.Type{"mode": cty.String}),
				"s3_bucket": cty.String,
				"encrypted": cty.Bool,
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctyext.ImpliedType(tt.typ, ctyext.SnakeCase)
			if !got.Equals(tt.want) {
				t.Errorf("ImpliedType() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestImpliedType_unsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ImpliedType() did not panic for chan")
		}
	}()
	ctyext.ImpliedType(reflect.TypeOf(make(chan int)), ctyext.SnakeCase)
}
