package aws

import (
	"net"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/aws/endpoints"
	"github.com/terrasynth/terrasynth/resource/schema"
)

// AddValidators registers AWS specific validation rules. It must be called
// once, before any AWS resource is validated; Register does this.
func AddValidators() {
	schema.RegisterRule("arn", validARN,
		"must be a valid arn (https://docs.aws.amazon.com/general/latest/gr/aws-arns-and-namespaces.html)")
	schema.RegisterRule("region", validRegion, "must be a known aws region")
	schema.RegisterRule("cidr", validCIDR, "must be a valid cidr block")
}

func validARN(value string) bool {
	_, err := arn.Parse(value)
	return err == nil
}

func validRegion(value string) bool {
	for _, p := range endpoints.DefaultPartitions() {
		if _, ok := p.Regions()[value]; ok {
			return true
		}
	}
	return false
}

func validCIDR(value string) bool {
	_, _, err := net.ParseCIDR(value)
	return err == nil
}
