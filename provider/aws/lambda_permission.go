package aws

// LambdaPermission grants an AWS service or another account permission to
// invoke a Lambda function.
type LambdaPermission struct {
	// The action to allow. Defaults to lambda:InvokeFunction.
	Action string `func:"input" default:"lambda:InvokeFunction"`

	// The event source token, required by some services such as Alexa.
	EventSourceToken *string `func:"input"`

	// The name or ARN of the function.
	FunctionName string `func:"input,required"`

	// The principal that is granted the permission, for example
	// s3.amazonaws.com or an account id.
	Principal string `func:"input,required"`

	// The function version or alias the permission applies to.
	Qualifier *string `func:"input"`

	// The AWS account id of the source owner, when granting cross account
	// access for a resource in that account.
	SourceAccount *string `func:"input"`

	// The ARN of the source resource granting the permission, such as an S3
	// bucket or an SNS topic.
	SourceARN *string `func:"input" validate:"arn"`

	// A unique statement identifier.
	StatementID *string `func:"input" name:"statement_id" conflicts:"statement_id_prefix"`

	// A prefix for a generated statement identifier.
	StatementIDPrefix *string `func:"input" name:"statement_id_prefix" conflicts:"statement_id"`
}

// Type returns the resource type name.
func (p *LambdaPermission) Type() string { return "aws_lambda_permission" }
