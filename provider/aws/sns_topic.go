package aws

// SNSTopic manages an Amazon SNS topic.
type SNSTopic struct {
	// The display name for SMS messages sent from the topic.
	DisplayName *string `func:"input" validate:"max=100"`

	// The name of the topic. FIFO topic names must end in .fifo.
	Name *string `func:"input" validate:"max=256" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" conflicts:"name"`

	// The ARN of the KMS key for server side encryption.
	KMSMasterKeyID *string `func:"input" name:"kms_master_key_id"`

	// Key-value tags for the topic.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the topic.
	ARN *string `func:"output"`
}

// Type returns the resource type name.
func (t *SNSTopic) Type() string { return "aws_sns_topic" }
