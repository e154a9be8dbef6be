package aws

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/terrasynth/terrasynth/resource"
	"github.com/terrasynth/terrasynth/synth"
	"github.com/zclconf/go-cty/cty"
)

// SQSQueue manages an Amazon SQS message queue.
//
// Standard queues offer best-effort ordering and at-least-once delivery.
// FIFO queues guarantee exactly-once processing in send order; their names
// must end in .fifo.
type SQSQueue struct {
	// Enables content based deduplication on a FIFO queue.
	ContentBasedDeduplication *bool `func:"input"`

	// The time in seconds the delivery of all messages is delayed.
	// Defaults to 0.
	DelaySeconds *int `func:"input" validate:"min=0,max=900"`

	// Designates the queue as a FIFO queue. Cannot be changed after
	// creation.
	FIFOQueue *bool `func:"input" name:"fifo_queue"`

	// The time in seconds SQS reuses a data key to encrypt or decrypt
	// messages before calling KMS again. Defaults to 300.
	KMSDataKeyReusePeriodSeconds *int `func:"input" name:"kms_data_key_reuse_period_seconds" validate:"min=60,max=86400"`

	// The id of a customer master key for server side encryption.
	KMSMasterKeyID *string `func:"input" name:"kms_master_key_id"`

	// The limit in bytes a message can contain. Defaults to 262144
	// (256 KiB).
	MaxMessageSize *int `func:"input" validate:"min=1024,max=262144"`

	// The time in seconds SQS retains a message. Defaults to 345600
	// (4 days).
	MessageRetentionSeconds *int `func:"input" validate:"min=60,max=1209600"`

	// The name of the queue. Up to 80 characters, alphanumeric, hyphens and
	// underscores. FIFO queue names must end in .fifo.
	Name *string `func:"input" validate:"max=80" conflicts:"name_prefix"`

	// A prefix for a generated unique name.
	NamePrefix *string `func:"input" conflicts:"name"`

	// A valid AWS policy document for the queue.
	Policy *PolicyDocument `func:"input"`

	// The time in seconds a ReceiveMessage call waits for a message before
	// returning. Defaults to 0.
	ReceiveWaitTimeSeconds *int `func:"input" validate:"min=0,max=20"`

	// Dead letter queue settings for the queue.
	RedrivePolicy *struct {
		// The ARN of the dead letter queue. A FIFO queue must use a FIFO
		// dead letter queue.
		DeadLetterTargetARN string `validate:"required,arn"`

		// The number of deliveries before a message is moved to the dead
		// letter queue.
		MaxReceiveCount int `validate:"required,min=1,max=1000"`
	} `func:"input"`

	// The visibility timeout for the queue in seconds. Defaults to 30.
	VisibilityTimeoutSeconds *int `func:"input" validate:"min=0,max=43200"`

	// Key-value tags for the queue.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the queue.
	ARN *string `func:"output"`

	// The URL of the queue.
	URL *string `func:"output"`
}

// Type returns the resource type name.
func (q *SQSQueue) Type() string { return "aws_sqs_queue" }

// Validate enforces the FIFO naming invariant: the .fifo suffix and the
// fifo_queue flag must agree.
func (q *SQSQueue) Validate() error {
	if q.Name == nil {
		return nil
	}
	fifo := q.FIFOQueue != nil && *q.FIFOQueue
	suffix := strings.HasSuffix(*q.Name, ".fifo")
	if fifo && !suffix {
		return errors.New("name: fifo queue names must end in .fifo")
	}
	if !fifo && suffix {
		return errors.New("name: the .fifo suffix is reserved for fifo queues")
	}
	return nil
}

// EncodeBlock maps the queue onto its Terraform block. The redrive policy
// and queue policy are serialized to JSON strings.
func (q *SQSQueue) EncodeBlock(b *synth.Block) error {
	b.Set("content_based_deduplication", q.ContentBasedDeduplication)
	b.Set("delay_seconds", q.DelaySeconds)
	b.Set("fifo_queue", q.FIFOQueue)
	b.Set("kms_data_key_reuse_period_seconds", q.KMSDataKeyReusePeriodSeconds)
	b.Set("kms_master_key_id", q.KMSMasterKeyID)
	b.Set("max_message_size", q.MaxMessageSize)
	b.Set("message_retention_seconds", q.MessageRetentionSeconds)
	b.Set("name", q.Name)
	b.Set("name_prefix", q.NamePrefix)
	if q.Policy != nil {
		policy, err := q.Policy.JSON()
		if err != nil {
			return err
		}
		b.Set("policy", policy)
	}
	b.Set("receive_wait_time_seconds", q.ReceiveWaitTimeSeconds)
	if q.RedrivePolicy != nil {
		redrive, err := json.Marshal(map[string]interface{}{
			"deadLetterTargetArn": q.RedrivePolicy.DeadLetterTargetARN,
			"maxReceiveCount":     q.RedrivePolicy.MaxReceiveCount,
		})
		if err != nil {
			return errors.Wrap(err, "marshal redrive policy")
		}
		b.Set("redrive_policy", string(redrive))
	}
	b.Set("visibility_timeout_seconds", q.VisibilityTimeoutSeconds)
	b.Set("tags", q.Tags)
	return nil
}

// ComputedValues publishes whether the queue is FIFO, so downstream
// definitions can pick matching dead letter queues without re-deriving it
// from the name.
func (q *SQSQueue) ComputedValues(ref resource.Reference) map[string]cty.Value {
	fifo := q.FIFOQueue != nil && *q.FIFOQueue
	return map[string]cty.Value{
		"fifo": cty.BoolVal(fifo),
	}
}
