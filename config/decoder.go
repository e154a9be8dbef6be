package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl2/hcl"
	"github.com/hashicorp/hcl2/hcldec"
	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/terrasynth/terrasynth/resource"
	"github.com/terrasynth/terrasynth/resource/schema"
	"github.com/terrasynth/terrasynth/suggest"
	"github.com/terrasynth/terrasynth/synth"
	"github.com/zclconf/go-cty/cty"
)

// A Registry matches resource type names to definitions.
type Registry interface {
	New(typename string) (resource.Definition, error)
}

// A Decoder synthesizes loaded configuration into a session.
type Decoder struct {
	Registry Registry
}

// res holds the intermediate state for one resource block.
type res struct {
	config Resource
	def    resource.Definition
	spec   hcldec.Spec
	vars   []hcl.Traversal
}

// Decode decodes every resource body against the schema of its type and
// synthesizes the resources into the session, in dependency order.
//
// References to other resources resolve to their interpolation outputs, so a
// reference decodes as the ${type.name.attr} string the output maps to.
func (d *Decoder) Decode(cfg *Root, s *synth.Session) hcl.Diagnostics {
	var diags hcl.Diagnostics

	resources := make(map[string]*res, len(cfg.Resources))
	for _, r := range cfg.Resources {
		if _, ok := resources[r.Name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate resource",
				Detail:   fmt.Sprintf("A resource named %q was already defined.", r.Name),
				Subject:  r.Config.MissingItemRange().Ptr(),
			})
			continue
		}
		def, err := d.Registry.New(r.Type)
		if err != nil {
			diag := &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Resource not supported",
				Detail:   fmt.Sprintf("A resource type %q is not supported.", r.Type),
				Subject:  r.Config.MissingItemRange().Ptr(),
			}
			if nse, ok := err.(resource.NotSupportedError); ok && nse.Suggestion != "" {
				diag.Detail += fmt.Sprintf(" Did you mean %q?", nse.Suggestion)
			}
			diags = append(diags, diag)
			continue
		}
		spec := bodySpec(schema.Fields(reflect.TypeOf(def)).Inputs())
		resources[r.Name] = &res{
			config: r,
			def:    def,
			spec:   spec,
			vars:   hcldec.Variables(r.Config, spec),
		}
	}
	if diags.HasErrors() {
		return diags
	}

	deps := make(map[string][]string, len(resources))
	for name, r := range resources {
		deps[name] = nil
		for _, tr := range r.vars {
			root := tr.RootName()
			if _, ok := resources[root]; !ok {
				diag := &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Referenced resource not found",
					Detail:   fmt.Sprintf("A resource named %q is not defined.", root),
					Subject:  tr.SourceRange().Ptr(),
				}
				names := make([]string, 0, len(resources))
				for k := range resources {
					names = append(names, k)
				}
				if sug := suggest.String(root, names); sug != "" {
					diag.Detail += fmt.Sprintf(" Did you mean %q?", sug)
				}
				diags = append(diags, diag)
				continue
			}
			deps[name] = append(deps[name], root)
		}
	}
	if diags.HasErrors() {
		return diags
	}

	order, err := dependencyOrder(deps)
	if err != nil {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid resource references",
			Detail:   upperFirst(err.Error()) + ".",
		})
	}

	ctx := &hcl.EvalContext{Variables: make(map[string]cty.Value, len(order))}
	for _, name := range order {
		r := resources[name]
		val, moreDiags := hcldec.Decode(r.config.Config, r.spec, ctx)
		diags = append(diags, moreDiags...)
		if moreDiags.HasErrors() {
			continue
		}
		if err := ctyext.FromCtyValue(val, r.def, ctyext.SnakeCase); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsuitable value",
				Detail:   fmt.Sprintf("Could not decode %s: %v.", name, err),
				Subject:  r.config.Config.MissingItemRange().Ptr(),
			})
			continue
		}
		ref, err := resource.Synth(s, r.def, name)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid resource",
				Detail:   upperFirst(err.Error()) + ".",
				Subject:  r.config.Config.MissingItemRange().Ptr(),
			})
			continue
		}
		ctx.Variables[name] = referenceVal(*ref)
	}
	return diags
}

// referenceVal exposes a reference in the eval context: an object of the
// interpolation outputs plus any computed values.
func referenceVal(ref resource.Reference) cty.Value {
	attrs := make(map[string]cty.Value, len(ref.Outputs)+len(ref.Computed))
	for k, v := range ref.Outputs {
		attrs[k] = cty.StringVal(v)
	}
	for k, v := range ref.Computed {
		attrs[k] = v
	}
	return cty.ObjectVal(attrs)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
