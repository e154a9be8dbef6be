package aws

import (
	"github.com/terrasynth/terrasynth/synth"
)

// IAMRole manages an AWS IAM role.
//
// An IAM role is an identity with permission policies that determine what
// the identity can and cannot do in AWS. A role does not have long term
// credentials; it is assumed by trusted entities defined in the assume role
// policy.
type IAMRole struct {
	// The policy that grants an entity permission to assume the role.
	AssumeRolePolicy PolicyDocument `func:"input,required"`

	// A description of the role.
	Description *string `func:"input" validate:"max=1000"`

	// Whether policies should be detached from the role before destroying
	// it.
	ForceDetachPolicies *bool `func:"input"`

	// The maximum session duration, in seconds, for the role. Between 1 and
	// 12 hours.
	MaxSessionDuration *int `func:"input" validate:"min=3600,max=43200"`

	// The name of the role. If omitted, a name is generated.
	Name *string `func:"input" validate:"max=64" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" validate:"max=32" conflicts:"name"`

	// The path to the role.
	Path *string `func:"input"`

	// The ARN of the policy used to set the permissions boundary for the
	// role.
	PermissionsBoundary *string `func:"input" validate:"arn"`

	// Key-value tags for the role.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the role.
	ARN *string `func:"output"`

	// The creation date of the role.
	CreateDate *string `func:"output"`

	// The stable and unique id of the role.
	UniqueID *string `func:"output"`
}

// Type returns the resource type name.
func (r *IAMRole) Type() string { return "aws_iam_role" }

// EncodeBlock maps the role onto its Terraform block. The assume role
// policy is serialized to a JSON string.
func (r *IAMRole) EncodeBlock(b *synth.Block) error {
	policy, err := r.AssumeRolePolicy.JSON()
	if err != nil {
		return err
	}
	b.Set("assume_role_policy", policy)
	b.Set("description", r.Description)
	b.Set("force_detach_policies", r.ForceDetachPolicies)
	b.Set("max_session_duration", r.MaxSessionDuration)
	b.Set("name", r.Name)
	b.Set("name_prefix", r.NamePrefix)
	b.Set("path", r.Path)
	b.Set("permissions_boundary", r.PermissionsBoundary)
	b.Set("tags", r.Tags)
	return nil
}
