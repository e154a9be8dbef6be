package aws

import (
	"github.com/terrasynth/terrasynth/resource"
)

type registry interface {
	Register(def resource.Definition)
}

// Register registers all AWS resources and data sources, and adds the AWS
// validation rules to the schema validator.
func Register(reg registry) {
	AddValidators()

	reg.Register(&CallerIdentity{})
	reg.Register(&CloudwatchLogGroup{})
	reg.Register(&DynamoDBTable{})
	reg.Register(&IAMPolicy{})
	reg.Register(&IAMRole{})
	reg.Register(&IAMRolePolicyAttachment{})
	reg.Register(&Instance{})
	reg.Register(&LambdaFunction{})
	reg.Register(&LambdaPermission{})
	reg.Register(&S3Bucket{})
	reg.Register(&S3BucketPolicy{})
	reg.Register(&SecurityGroup{})
	reg.Register(&SNSTopic{})
	reg.Register(&SNSTopicSubscription{})
	reg.Register(&SQSQueue{})
	reg.Register(&Subnet{})
	reg.Register(&VPC{})
}
