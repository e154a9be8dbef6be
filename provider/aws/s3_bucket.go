package aws

import (
	"fmt"

	"github.com/terrasynth/terrasynth/resource"
	"github.com/terrasynth/terrasynth/synth"
	"github.com/zclconf/go-cty/cty"
)

// S3Bucket manages an Amazon S3 bucket.
type S3Bucket struct {
	// The canned ACL to apply to the bucket. Defaults to private.
	ACL *string `func:"input" name:"acl" validate:"oneof=private public-read public-read-write aws-exec-read authenticated-read log-delivery-write"`

	// The name of the bucket. Must be globally unique. If omitted, a name
	// is generated.
	Bucket *string `func:"input" validate:"min=3,max=63" conflicts:"bucket_prefix"`

	// A prefix for a generated unique bucket name.
	BucketPrefix *string `func:"input" validate:"max=37" conflicts:"bucket"`

	// Whether all objects should be deleted from the bucket when the
	// bucket is destroyed, so it can be destroyed without error.
	ForceDestroy *bool `func:"input"`

	// Access log delivery settings for the bucket.
	Logging *struct {
		// The bucket that receives the log objects.
		TargetBucket string `validate:"required"`

		// A key prefix for log object keys.
		TargetPrefix *string
	} `func:"input"`

	// A bucket policy document.
	Policy *PolicyDocument `func:"input"`

	// Versioning state of the bucket.
	Versioning *struct {
		Enabled bool

		// Whether MFA delete is enabled on the bucket versioning
		// configuration.
		MFADelete *bool `name:"mfa_delete"`
	} `func:"input"`

	// Static website hosting settings.
	Website *struct {
		// The index document when requests are made to the root domain.
		IndexDocument *string

		// The document returned on 4XX errors.
		ErrorDocument *string

		// A hostname to redirect all requests to. Mutually exclusive with
		// the other website attributes.
		RedirectAllRequestsTo *string
	} `func:"input"`

	// Key-value tags for the bucket.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the bucket.
	ARN *string `func:"output"`

	// The bucket domain name: <bucket>.s3.amazonaws.com.
	BucketDomainName *string `func:"output"`

	// The region specific domain name of the bucket.
	BucketRegionalDomainName *string `func:"output"`

	// The website endpoint, when website hosting is configured.
	WebsiteEndpoint *string `func:"output"`
}

// Type returns the resource type name.
func (b *S3Bucket) Type() string { return "aws_s3_bucket" }

// EncodeBlock maps the bucket onto its Terraform block. The policy is
// serialized to a JSON string; the remaining attributes encode generically.
func (b *S3Bucket) EncodeBlock(blk *synth.Block) error {
	if b.Policy != nil {
		policy, err := b.Policy.JSON()
		if err != nil {
			return err
		}
		blk.Set("policy", policy)
	}
	blk.Set("acl", b.ACL)
	blk.Set("bucket", b.Bucket)
	blk.Set("bucket_prefix", b.BucketPrefix)
	blk.Set("force_destroy", b.ForceDestroy)
	if b.Logging != nil {
		blk.Block("logging", func(nb *synth.Block) {
			nb.Set("target_bucket", b.Logging.TargetBucket)
			nb.Set("target_prefix", b.Logging.TargetPrefix)
		})
	}
	if b.Versioning != nil {
		blk.Block("versioning", func(nb *synth.Block) {
			nb.Set("enabled", b.Versioning.Enabled)
			nb.Set("mfa_delete", b.Versioning.MFADelete)
		})
	}
	if b.Website != nil {
		blk.Block("website", func(nb *synth.Block) {
			nb.Set("index_document", b.Website.IndexDocument)
			nb.Set("error_document", b.Website.ErrorDocument)
			nb.Set("redirect_all_requests_to", b.Website.RedirectAllRequestsTo)
		})
	}
	blk.Set("tags", b.Tags)
	return nil
}

// ComputedValues publishes s3:// convenience URIs derived from the bucket
// reference.
func (b *S3Bucket) ComputedValues(ref resource.Reference) map[string]cty.Value {
	return map[string]cty.Value{
		"s3_uri":    cty.StringVal(fmt.Sprintf("s3://%s", ref.Attr("bucket"))),
		"https_url": cty.StringVal(fmt.Sprintf("https://%s", ref.Attr("bucket_domain_name"))),
	}
}
