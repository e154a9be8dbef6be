package resource

import (
	"github.com/terrasynth/terrasynth/synth"
	"github.com/zclconf/go-cty/cty"
)

// A Definition describes a resource type.
//
// Definitions are structs with attributes declared through func struct tags
// (see the schema package). The struct must be registered as a pointer.
type Definition interface {
	// Type returns the Terraform type name for the resource, such as
	// aws_sqs_queue. The name is used to match user configuration to the
	// definition and becomes the type key in the synthesized document.
	Type() string
}

// A BlockEncoder takes full control over mapping its attributes to the
// Terraform block. Definitions that do not implement it are encoded
// generically from their schema by Encode.
type BlockEncoder interface {
	EncodeBlock(b *synth.Block) error
}

// DataSource marks a definition as a Terraform data source. Data sources
// synthesize under the data document key and interpolate as
// data.<type>.<name>.<attr>.
type DataSource interface {
	Definition

	// DataSource is a marker; implementations are empty.
	DataSource()
}

// Validator is implemented by definitions with cross-attribute invariants
// that cannot be expressed in struct tags, such as a name format depending
// on another attribute. It runs after tag based validation.
type Validator interface {
	Validate() error
}

// ComputedValuer is implemented by definitions that expose derived
// convenience values on their reference, in addition to the interpolation
// outputs.
type ComputedValuer interface {
	ComputedValues(ref Reference) map[string]cty.Value
}
