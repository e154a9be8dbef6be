package aws

// VPC manages a virtual private cloud network.
type VPC struct {
	// The IPv4 network range for the VPC in CIDR notation.
	CIDRBlock string `func:"input,required" name:"cidr_block" validate:"cidr"`

	// Whether instances launched in the VPC get public DNS hostnames.
	// Requires DNS support.
	EnableDNSHostnames *bool `func:"input" name:"enable_dns_hostnames"`

	// Whether DNS resolution through the Amazon DNS server is supported.
	// Defaults to true.
	EnableDNSSupport *bool `func:"input" name:"enable_dns_support"`

	// The tenancy of instances launched into the VPC.
	InstanceTenancy *string `func:"input" validate:"oneof=default dedicated"`

	// Key-value tags for the VPC.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the VPC.
	ARN *string `func:"output"`

	// The id of the default network ACL created with the VPC.
	DefaultNetworkACLID *string `func:"output" name:"default_network_acl_id"`

	// The id of the default route table created with the VPC.
	DefaultRouteTableID *string `func:"output" name:"default_route_table_id"`

	// The id of the default security group created with the VPC.
	DefaultSecurityGroupID *string `func:"output" name:"default_security_group_id"`
}

// Type returns the resource type name.
func (v *VPC) Type() string { return "aws_vpc" }
