package ctyext_test

import (
	"reflect"
	"testing"

	"github.com/terrasynth/terrasynth/ctyext"
)

func TestSnakeCase(t *testing.T) {
	type def struct {
		Name                string
		FunctionName        string
		VPCConfig           string
		TTL                 string
		S3Bucket            string `name:"s3_bucket"`
		MaxRetries2         string
		unexported          string // nolint: structcheck, unused
		AssociatePublicIPID string
	}

	want := map[string]string{
		"Name":                "name",
		"FunctionName":        "function_name",
		"VPCConfig":           "vpc_config",
		"TTL":                 "ttl",
		"S3Bucket":            "s3_bucket",
		"MaxRetries2":         "max_retries2",
		"AssociatePublicIPID": "associate_public_ipid",
	}

	typ := reflect.TypeOf(def{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		got := ctyext.SnakeCase(f)
		if f.PkgPath != "" {
			if got != "" {
				t.Errorf("SnakeCase(%s) = %q, want empty for unexported", f.Name, got)
			}
			continue
		}
		if got != want[f.Name] {
			t.Errorf("SnakeCase(%s) = %q, want %q", f.Name, got, want[f.Name])
		}
	}
}
