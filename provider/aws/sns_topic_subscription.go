package aws

// SNSTopicSubscription subscribes an endpoint to an SNS topic.
type SNSTopicSubscription struct {
	// The endpoint to send messages to. The format depends on the protocol:
	// a queue ARN for sqs, a URL for http(s), a function ARN for lambda.
	Endpoint string `func:"input,required"`

	// The protocol used to deliver messages.
	Protocol string `func:"input,required" validate:"oneof=sqs sms lambda firehose application email email-json http https"`

	// Whether the delivered message should be the raw payload, without
	// the SNS JSON envelope. Only valid for sqs and http(s) endpoints.
	RawMessageDelivery *bool `func:"input"`

	// A JSON filter policy; only messages matching the policy are
	// delivered.
	FilterPolicy *string `func:"input"`

	// The ARN of the topic to subscribe to.
	TopicARN string `func:"input,required" validate:"arn"`

	// Outputs

	// The Amazon Resource Name of the subscription.
	ARN *string `func:"output"`
}

// Type returns the resource type name.
func (s *SNSTopicSubscription) Type() string { return "aws_sns_topic_subscription" }
