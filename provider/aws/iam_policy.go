package aws

import (
	"github.com/terrasynth/terrasynth/synth"
)

// IAMPolicy manages a standalone IAM policy that can be attached to users,
// groups and roles.
type IAMPolicy struct {
	// A description of the policy. Cannot be changed after creation.
	Description *string `func:"input" validate:"max=1000"`

	// The name of the policy. If omitted, a name is generated.
	Name *string `func:"input" validate:"max=128" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" conflicts:"name"`

	// The path for the policy.
	Path *string `func:"input"`

	// The policy document.
	Policy PolicyDocument `func:"input,required"`

	// Outputs

	// The Amazon Resource Name of the policy.
	ARN *string `func:"output"`
}

// Type returns the resource type name.
func (p *IAMPolicy) Type() string { return "aws_iam_policy" }

// EncodeBlock maps the policy onto its Terraform block with the document
// serialized to a JSON string.
func (p *IAMPolicy) EncodeBlock(b *synth.Block) error {
	policy, err := p.Policy.JSON()
	if err != nil {
		return err
	}
	b.Set("description", p.Description)
	b.Set("name", p.Name)
	b.Set("name_prefix", p.NamePrefix)
	b.Set("path", p.Path)
	b.Set("policy", policy)
	return nil
}
