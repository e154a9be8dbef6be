package aws

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DefaultPolicyVersion is set on a policy document when the version is
// omitted.
const DefaultPolicyVersion = "2012-10-17"

// A PolicyDocument is an IAM policy for roles, users and resource policies.
//
// The document is an attribute shared by multiple resource types; Terraform
// expects it serialized as a JSON string.
type PolicyDocument struct {
	// The version of the policy language. If not set, 2012-10-17 is used.
	Version string

	// One or more statements describing the effect of the policy.
	Statements []PolicyStatement `name:"statement" validate:"min=1"`
}

// A PolicyStatement is a single statement in a policy document.
type PolicyStatement struct {
	// Optional statement ID to differentiate between statements.
	SID string `name:"sid"`

	// Allow or Deny access.
	Effect string `validate:"required,oneof=Allow Deny"`

	// The principals the statement applies to, keyed by principal type
	// (AWS, Service, Federated). Omit on identity policies.
	Principals map[string][]string

	// The principals the statement does not apply to.
	NotPrincipals map[string][]string

	// Actions the policy allows or denies.
	Actions []string

	// Actions the statement does not apply to.
	NotActions []string

	// Resources the actions apply to.
	Resources []string

	// Resources the actions do not apply to.
	NotResources []string

	// Conditions for when the policy is in effect, keyed by condition
	// operator, then condition key.
	Conditions map[string]map[string]string
}

// JSON serializes the document to the AWS policy JSON format.
func (d PolicyDocument) JSON() (string, error) {
	version := d.Version
	if version == "" {
		version = DefaultPolicyVersion
	}
	statements := make([]interface{}, len(d.Statements))
	for i, s := range d.Statements {
		statements[i] = s.policyJSON()
	}
	b, err := json.Marshal(map[string]interface{}{
		"Version":   version,
		"Statement": statements,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal policy")
	}
	return string(b), nil
}

// policyJSON returns the statement in the shape AWS expects. Single element
// lists collapse to a plain string, matching the policies AWS itself
// generates.
func (s PolicyStatement) policyJSON() map[string]interface{} {
	out := make(map[string]interface{}, 8)
	if s.SID != "" {
		out["Sid"] = s.SID
	}
	out["Effect"] = s.Effect
	setList := func(key string, values []string) {
		switch len(values) {
		case 0:
		case 1:
			out[key] = values[0]
		default:
			out[key] = values
		}
	}
	setList("Action", s.Actions)
	setList("NotAction", s.NotActions)
	setList("Resource", s.Resources)
	setList("NotResource", s.NotResources)
	setPrincipal := func(key string, principals map[string][]string) {
		if len(principals) == 0 {
			return
		}
		p := make(map[string]interface{}, len(principals))
		for k, v := range principals {
			if len(v) == 1 {
				p[k] = v[0]
				continue
			}
			p[k] = v
		}
		out[key] = p
	}
	setPrincipal("Principal", s.Principals)
	setPrincipal("NotPrincipal", s.NotPrincipals)
	if len(s.Conditions) > 0 {
		out["Condition"] = s.Conditions
	}
	return out
}
