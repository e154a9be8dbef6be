// Package ctyext converts between Go values and the cty type system.
//
// The conversions are similar to gocty, with two differences: struct fields
// are mapped to attribute names through a FieldNameFunc rather than a
// hardcoded cty struct tag, and null values are assigned as Go zero values so
// optional attributes can be represented as nil pointers.
//
// The synthesizer stores every attribute as a cty.Value, which keeps the
// value model identical on both sides of the pipeline: values decoded from
// HCL configuration and values set from Go code marshal to the same JSON.
package ctyext
