package resource

import (
	"fmt"
	"reflect"

	"github.com/terrasynth/terrasynth/resource/schema"
	"github.com/zclconf/go-cty/cty"
)

// A Reference exposes a synthesized resource for downstream composition.
//
// Outputs hold Terraform interpolation strings for every declared output
// attribute; Computed holds derived convenience values the definition chose
// to publish. References are plain data with no ownership semantics.
type Reference struct {
	Type     string
	Name     string
	Outputs  map[string]string
	Computed map[string]cty.Value

	data bool
}

// Attr returns the interpolation string for an attribute, whether or not it
// is a declared output. Terraform exposes more attributes than schemas
// declare; Attr allows referencing any of them.
//
// The result is a deterministic function of (type, name, attr).
func (r Reference) Attr(attr string) string {
	if r.data {
		return fmt.Sprintf("${data.%s.%s.%s}", r.Type, r.Name, attr)
	}
	return fmt.Sprintf("${%s.%s.%s}", r.Type, r.Name, attr)
}

// ID returns the interpolation string for the resource id. Every Terraform
// resource has an id, declared or not.
func (r Reference) ID() string { return r.Attr("id") }

// NewReference builds the reference for a definition synthesized under the
// given name.
func NewReference(def Definition, name string) Reference {
	ref := Reference{
		Type: def.Type(),
		Name: name,
	}
	if _, ok := def.(DataSource); ok {
		ref.data = true
	}

	outputs := schema.Fields(reflect.TypeOf(def)).Outputs()
	ref.Outputs = make(map[string]string, len(outputs)+1)
	ref.Outputs["id"] = ref.Attr("id")
	for _, attr := range outputs.Names() {
		ref.Outputs[attr] = ref.Attr(attr)
	}

	if c, ok := def.(ComputedValuer); ok {
		ref.Computed = c.ComputedValues(ref)
	}
	return ref
}
