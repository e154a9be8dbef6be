package aws

// IAMRolePolicyAttachment attaches a managed IAM policy to a role.
//
// The same policy can be attached to any number of roles; each attachment
// is its own resource.
type IAMRolePolicyAttachment struct {
	// The ARN of the policy to attach.
	PolicyARN string `func:"input,required" validate:"arn"`

	// The name of the role to attach the policy to.
	Role string `func:"input,required"`
}

// Type returns the resource type name.
func (p *IAMRolePolicyAttachment) Type() string { return "aws_iam_role_policy_attachment" }
