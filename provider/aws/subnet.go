package aws

// Subnet manages a VPC subnet.
type Subnet struct {
	// The availability zone for the subnet.
	AvailabilityZone *string `func:"input"`

	// The IPv4 network range for the subnet in CIDR notation. Must be a
	// subset of the VPC's range.
	CIDRBlock string `func:"input,required" name:"cidr_block" validate:"cidr"`

	// Whether instances launched into the subnet are assigned a public IP
	// address.
	MapPublicIPOnLaunch *bool `func:"input" name:"map_public_ip_on_launch"`

	// The id of the VPC the subnet belongs to.
	VPCID string `func:"input,required" name:"vpc_id"`

	// Key-value tags for the subnet.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the subnet.
	ARN *string `func:"output"`
}

// Type returns the resource type name.
func (s *Subnet) Type() string { return "aws_subnet" }
