package aws

// LambdaFunction manages an AWS Lambda function.
//
// Lambda runs code without provisioning servers. The function code must be
// provided either as a local deployment package (filename) or from an S3
// object (s3_bucket and s3_key); the two are mutually exclusive.
type LambdaFunction struct {
	// A dead letter queue or topic for asynchronous events that failed
	// processing.
	DeadLetterConfig *struct {
		TargetARN string `validate:"required,arn"`
	} `func:"input"`

	// A description of the function.
	Description *string `func:"input" validate:"max=256"`

	// Environment variables accessible from the function code during
	// execution.
	Environment *struct {
		Variables map[string]string
	} `func:"input"`

	// Path to the local deployment package.
	Filename *string `func:"input" conflicts:"s3_bucket s3_key"`

	// The name of the function. Limited to 64 characters.
	FunctionName string `func:"input,required" validate:"min=1,max=64"`

	// The entry point of the function within the code.
	Handler string `func:"input,required"`

	// The ARN of the KMS key used to encrypt environment variables.
	KMSKeyARN *string `func:"input" validate:"arn"`

	// Function layers to add to the execution environment. At most 5.
	Layers []string `func:"input" validate:"max=5"`

	// The amount of memory in MB available to the function. Must be a
	// multiple of 64. Defaults to 128.
	MemorySize *int `func:"input" default:"128" validate:"min=128,max=3008,div=64"`

	// Whether to publish the first version of the function on creation.
	Publish *bool `func:"input"`

	// The maximum concurrent executions reserved for the function.
	ReservedConcurrentExecutions *int `func:"input" validate:"min=0"`

	// The ARN of the function's execution role.
	Role string `func:"input,required" validate:"arn"`

	// The runtime for the function.
	Runtime string `func:"input,required" validate:"oneof=nodejs10.x nodejs12.x java8 java11 python2.7 python3.6 python3.7 python3.8 dotnetcore2.1 dotnetcore3.1 go1.x ruby2.5 ruby2.7 provided"` // nolint: lll

	// The S3 bucket holding the deployment package. Must be in the same
	// region as the function.
	S3Bucket *string `func:"input" name:"s3_bucket" conflicts:"filename"`

	// The S3 key of the deployment package.
	S3Key *string `func:"input" name:"s3_key" conflicts:"filename"`

	// The object version of the deployment package.
	S3ObjectVersion *string `func:"input" name:"s3_object_version" conflicts:"filename"`

	// Base64 encoded SHA256 hash of the deployment package, used to detect
	// changes.
	SourceCodeHash *string `func:"input"`

	// Key-value tags for the function.
	Tags map[string]string `func:"input"`

	// The time in seconds the function is allowed to run. Defaults to 3.
	Timeout *int `func:"input" default:"3" validate:"min=1,max=900"`

	// Set mode to Active to trace a subset of incoming requests with AWS
	// X-Ray.
	TracingConfig *struct {
		Mode string `validate:"required,oneof=Active PassThrough"`
	} `func:"input"`

	// Security groups and subnets when the function runs inside a VPC. At
	// least one security group and one subnet are required.
	VPCConfig *struct {
		SecurityGroupIDs []string `validate:"required,min=1"`
		SubnetIDs        []string `validate:"required,min=1"`
	} `func:"input" name:"vpc_config"`

	// Outputs

	// The Amazon Resource Name of the function.
	ARN *string `func:"output"`

	// The ARN used to invoke the function from API Gateway.
	InvokeARN *string `func:"output"`

	// The date the function was last modified.
	LastModified *string `func:"output"`

	// The ARN identifying the published version of the function.
	QualifiedARN *string `func:"output"`

	// The size in bytes of the deployment package.
	SourceCodeSize *int `func:"output"`

	// The latest published version of the function.
	Version *string `func:"output"`
}

// Type returns the resource type name.
func (l *LambdaFunction) Type() string { return "aws_lambda_function" }
