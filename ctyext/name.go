package ctyext

import (
	"reflect"
	"regexp"
	"strings"
)

// FieldNameFunc returns the attribute name to use for a struct field. An
// empty string excludes the field from conversion.
type FieldNameFunc = func(field reflect.StructField) string

var reCapWord = regexp.MustCompile("(.)([A-Z][a-z]+)")
var reCapTail = regexp.MustCompile("([a-z0-9])([A-Z])")

// SnakeCase maps a struct field to its snake_case attribute name. A `name`
// struct tag overrides the derived name. Unexported fields map to "".
//
// Initialisms are kept together: VPCConfig becomes vpc_config.
func SnakeCase(field reflect.StructField) string {
	if field.PkgPath != "" {
		return ""
	}
	if n, ok := field.Tag.Lookup("name"); ok {
		return n
	}
	snake := reCapWord.ReplaceAllString(field.Name, "${1}_${2}")
	snake = reCapTail.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}
