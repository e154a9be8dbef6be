package aws

import (
	"github.com/pkg/errors"
	"github.com/terrasynth/terrasynth/synth"
)

// Provider configures the aws provider block.
type Provider struct {
	// The region to create resources in.
	Region string

	// An alias for the provider, used when a document targets multiple
	// regions.
	Alias string

	// The named profile to read credentials from.
	Profile string

	// The maximum number of retries for api calls made by Terraform.
	MaxRetries *int
}

// Configure adds the provider block to the session. The region must be a
// valid AWS region.
func (p Provider) Configure(s *synth.Session) error {
	if p.Region == "" {
		return errors.New("region not set")
	}
	if !validRegion(p.Region) {
		return errors.Errorf("invalid region %q", p.Region)
	}
	return s.Provider("aws", func(b *synth.Block) {
		b.Set("region", p.Region)
		if p.Alias != "" {
			b.Set("alias", p.Alias)
		}
		if p.Profile != "" {
			b.Set("profile", p.Profile)
		}
		if p.MaxRetries != nil {
			b.Set("max_retries", *p.MaxRetries)
		}
	})
}
