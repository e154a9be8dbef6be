package aws

// Instance manages an EC2 instance.
type Instance struct {
	// The AMI to launch the instance from.
	AMI string `func:"input,required" name:"ami"`

	// Whether to associate a public IP address in a VPC.
	AssociatePublicIPAddress *bool `func:"input" name:"associate_public_ip_address"`

	// The availability zone to launch the instance in.
	AvailabilityZone *string `func:"input"`

	// The IAM instance profile to launch the instance with.
	IAMInstanceProfile *string `func:"input" name:"iam_instance_profile"`

	// The instance type, such as t3.micro.
	InstanceType string `func:"input,required"`

	// The key pair name for SSH access.
	KeyName *string `func:"input"`

	// Whether to enable detailed monitoring.
	Monitoring *bool `func:"input"`

	// Settings for the root block device of the instance.
	RootBlockDevice *struct {
		// Whether the volume is deleted on instance termination.
		DeleteOnTermination *bool

		// The size of the volume in GiB.
		VolumeSize *int `validate:"min=1,max=16384"`

		// The volume type.
		VolumeType *string `validate:"oneof=standard gp2 gp3 io1 io2 sc1 st1"`
	} `func:"input"`

	// The id of the subnet to launch the instance in.
	SubnetID *string `func:"input" name:"subnet_id"`

	// User data to provide when launching the instance.
	UserData *string `func:"input"`

	// Security group ids to associate with the instance.
	VPCSecurityGroupIDs []string `func:"input" name:"vpc_security_group_ids"`

	// Key-value tags for the instance.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the instance.
	ARN *string `func:"output"`

	// The private DNS name assigned to the instance.
	PrivateDNS *string `func:"output" name:"private_dns"`

	// The private IP address assigned to the instance.
	PrivateIP *string `func:"output" name:"private_ip"`

	// The public DNS name assigned to the instance.
	PublicDNS *string `func:"output" name:"public_dns"`

	// The public IP address assigned to the instance, if any.
	PublicIP *string `func:"output" name:"public_ip"`
}

// Type returns the resource type name.
func (i *Instance) Type() string { return "aws_instance" }
