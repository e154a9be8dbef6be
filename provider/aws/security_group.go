package aws

// SecurityGroupRule is a single ingress or egress rule on a security
// group.
type SecurityGroupRule struct {
	// The start of the port range, or the ICMP type number.
	FromPort int `validate:"min=-1,max=65535"`

	// The end of the port range, or the ICMP code.
	ToPort int `validate:"min=-1,max=65535"`

	// The protocol: tcp, udp, icmp, or -1 for all.
	Protocol string `validate:"required"`

	// IPv4 ranges the rule applies to.
	CIDRBlocks []string `name:"cidr_blocks" validate:"dive,cidr"`

	// Security group ids the rule applies to.
	SecurityGroups []string

	// Whether the group itself is included as a source.
	Self *bool

	// A description of the rule.
	Description *string `validate:"max=255"`
}

// SecurityGroup manages a VPC security group.
type SecurityGroup struct {
	// A description of the group. Cannot be changed after creation.
	// Defaults to Managed by Terraform.
	Description *string `func:"input" default:"Managed by Terraform" validate:"max=255"`

	// Outbound rules.
	Egress []SecurityGroupRule `func:"input"`

	// Inbound rules.
	Ingress []SecurityGroupRule `func:"input"`

	// The name of the group. If omitted, a name is generated.
	Name *string `func:"input" validate:"max=255" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" conflicts:"name"`

	// Whether to revoke all rules before deleting the group. Useful when
	// groups reference each other.
	RevokeRulesOnDelete *bool `func:"input"`

	// The id of the VPC to create the group in.
	VPCID *string `func:"input" name:"vpc_id"`

	// Key-value tags for the group.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the group.
	ARN *string `func:"output"`

	// The id of the owning AWS account.
	OwnerID *string `func:"output"`
}

// Type returns the resource type name.
func (g *SecurityGroup) Type() string { return "aws_security_group" }
