// Package schema extracts resource attribute schemas from struct tags.
//
// Inputs and outputs are declared with the func struct tag:
//
//	type Queue struct {
//	    Name  string  `func:"input,required"`
//	    Delay *int    `func:"input" validate:"min=0,max=900"`
//	    ARN   *string `func:"output"`
//	}
//
// Attribute names derive from the field name as snake_case and can be
// overridden with a name tag. Validation rules are declared in validate
// tags, defaults in default tags and mutually exclusive attributes in
// conflicts tags.
//
// Schemas are immutable once a type is defined; extraction is cached per
// type.
package schema
