package aws

// CallerIdentity looks up the account details for the configured
// credentials. It produces a data block rather than a resource.
type CallerIdentity struct {
	// Outputs

	// The AWS account id.
	AccountID *string `func:"output" name:"account_id"`

	// The Amazon Resource Name of the caller.
	ARN *string `func:"output"`

	// The unique identifier of the calling entity.
	UserID *string `func:"output" name:"user_id"`
}

// Type returns the data source type name.
func (c *CallerIdentity) Type() string { return "aws_caller_identity" }

// DataSource marks the type as a data source.
func (c *CallerIdentity) DataSource() {}
