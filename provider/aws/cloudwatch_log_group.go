package aws

// CloudwatchLogGroup manages a CloudWatch Logs log group.
type CloudwatchLogGroup struct {
	// The ARN of the KMS key to encrypt log data with.
	KMSKeyID *string `func:"input" name:"kms_key_id" validate:"arn"`

	// The name of the log group.
	Name *string `func:"input" validate:"max=512" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" conflicts:"name"`

	// The number of days to retain log events. 0 retains logs forever.
	RetentionInDays *int `func:"input" validate:"oneof=0 1 3 5 7 14 30 60 90 120 150 180 365 400 545 731 1827 3653"`

	// Key-value tags for the log group.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the log group.
	ARN *string `func:"output"`
}

// Type returns the resource type name.
func (g *CloudwatchLogGroup) Type() string { return "aws_cloudwatch_log_group" }
