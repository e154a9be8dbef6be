package aws

import (
	"github.com/terrasynth/terrasynth/synth"
)

// S3BucketPolicy attaches a policy to an S3 bucket.
type S3BucketPolicy struct {
	// The name of the bucket the policy applies to.
	Bucket string `func:"input,required"`

	// The policy document.
	Policy PolicyDocument `func:"input,required"`
}

// Type returns the resource type name.
func (p *S3BucketPolicy) Type() string { return "aws_s3_bucket_policy" }

// EncodeBlock maps the policy onto its Terraform block with the document
// serialized to a JSON string.
func (p *S3BucketPolicy) EncodeBlock(b *synth.Block) error {
	policy, err := p.Policy.JSON()
	if err != nil {
		return err
	}
	b.Set("bucket", p.Bucket)
	b.Set("policy", policy)
	return nil
}
