package aws

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPolicyDocumentJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  PolicyDocument
		want string
	}{
		{
			name: "SingleElementsCollapse",
			doc: PolicyDocument{
				Statements: []PolicyStatement{{
					Effect:    "Allow",
					Actions:   []string{"s3:GetObject"},
					Resources: []string{"arn:aws:s3:::artifacts/*"},
				}},
			},
			want: `{"Statement":[{"Action":"s3:GetObject","Effect":"Allow","Resource":"arn:aws:s3:::artifacts/*"}],"Version":"2012-10-17"}`,
		},
		{
			name: "Lists",
			doc: PolicyDocument{
				Version: "2008-10-17",
				Statements: []PolicyStatement{{
					SID:     "read",
					Effect:  "Allow",
					Actions: []string{"sqs:ReceiveMessage", "sqs:DeleteMessage"},
					Principals: map[string][]string{
						"AWS": {"arn:aws:iam::123456789012:root"},
					},
					Resources: []string{"*"},
					Conditions: map[string]map[string]string{
						"StringEquals": {"aws:SourceAccount": "123456789012"},
					},
				}},
			},
			want: `{"Statement":[{"Action":["sqs:ReceiveMessage","sqs:DeleteMessage"],"Condition":{"StringEquals":{"aws:SourceAccount":"123456789012"}},"Effect":"Allow","Principal":{"AWS":"arn:aws:iam::123456789012:root"},"Resource":"*","Sid":"read"}],"Version":"2008-10-17"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.doc.JSON()
			if err != nil {
				t.Fatalf("JSON() = %v", err)
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("JSON() (-got +want)\n%s", diff)
			}
		})
	}
}
