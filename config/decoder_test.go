package config_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl2/gohcl"
	"github.com/hashicorp/hcl2/hclparse"
	"github.com/terrasynth/terrasynth/config"
	"github.com/terrasynth/terrasynth/provider/aws"
	"github.com/terrasynth/terrasynth/resource"
	"github.com/terrasynth/terrasynth/synth"
)

func TestDecoderDecode(t *testing.T) {
	cfg := parse(t, `
resource "role" {
  type = "aws_iam_role"
  name = "worker"

  assume_role_policy {
    statement {
      effect     = "Allow"
      actions    = ["sts:AssumeRole"]
      principals = { Service = ["lambda.amazonaws.com"] }
    }
  }
}

resource "worker" {
  type = "aws_lambda_function"

  function_name = "worker"
  handler       = "index.handler"
  runtime       = "go1.x"
  role          = role.arn
  s3_bucket     = "artifacts"
  s3_key        = "worker.zip"
}
`)

	s := synth.New()
	d := &config.Decoder{Registry: registry(t)}
	if diags := d.Decode(cfg, s); diags.HasErrors() {
		t.Fatalf("Decode() = %v", diags)
	}

	got := document(t, s)
	want := map[string]interface{}{
		"resource": map[string]interface{}{
			"aws_iam_role": map[string]interface{}{
				"role": map[string]interface{}{
					"assume_role_policy": `{"Statement":[{"Action":"sts:AssumeRole","Effect":"Allow","Principal":{"Service":"lambda.amazonaws.com"}}],"Version":"2012-10-17"}`,
					"name":               "worker",
				},
			},
			"aws_lambda_function": map[string]interface{}{
				"worker": map[string]interface{}{
					"function_name": "worker",
					"handler":       "index.handler",
					"memory_size":   float64(128),
					"role":          "${aws_iam_role.role.arn}",
					"runtime":       "go1.x",
					"s3_bucket":     "artifacts",
					"s3_key":        "worker.zip",
					"timeout":       float64(3),
				},
			},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Decode() (-got +want)\n%s", diff)
	}
}

func TestDecoderDecode_diagnostics(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string // substring of diagnostic
	}{
		{
			name: "UnsupportedType",
			src: `
resource "q" {
  type = "aws_sqs_qeueu"
  name = "jobs"
}
`,
			wantErr: `Did you mean "aws_sqs_queue"?`,
		},
		{
			name: "DuplicateResource",
			src: `
resource "q" {
  type = "aws_sqs_queue"
  name = "a"
}

resource "q" {
  type = "aws_sqs_queue"
  name = "b"
}
`,
			wantErr: "Duplicate resource",
		},
		{
			name: "UnknownReference",
			src: `
resource "sub" {
  type      = "aws_sns_topic_subscription"
  topic_arn = events.arn
  protocol  = "sqs"
  endpoint  = "arn:aws:sqs:eu-west-1:123456789012:jobs"
}
`,
			wantErr: `A resource named "events" is not defined`,
		},
		{
			name: "ReferenceCycle",
			src: `
resource "a" {
  type = "aws_sns_topic"
  name = b.arn
}

resource "b" {
  type = "aws_sns_topic"
  name = a.arn
}
`,
			wantErr: "Dependency cycle between a, b",
		},
		{
			name: "ValidationError",
			src: `
resource "q" {
  type          = "aws_sqs_queue"
  name          = "jobs"
  delay_seconds = 1200
}
`,
			wantErr: "must be 900 or less",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parse(t, tt.src)
			s := synth.New()
			d := &config.Decoder{Registry: registry(t)}
			diags := d.Decode(cfg, s)
			if !diags.HasErrors() {
				t.Fatalf("Decode() = nil, want diagnostics containing %q", tt.wantErr)
			}
			if !strings.Contains(diags.Error(), tt.wantErr) {
				t.Errorf("Decode() = %v, want diagnostics containing %q", diags, tt.wantErr)
			}
		})
	}
}

func parse(t *testing.T, src string) *config.Root {
	t.Helper()
	f, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	if diags.HasErrors() {
		t.Fatalf("parse: %v", diags)
	}
	cfg := &config.Root{}
	if diags := gohcl.DecodeBody(f.Body, nil, cfg); diags.HasErrors() {
		t.Fatalf("decode: %v", diags)
	}
	return cfg
}

func registry(t *testing.T) *resource.Registry {
	t.Helper()
	reg := &resource.Registry{}
	aws.Register(reg)
	return reg
}

func document(t *testing.T, s *synth.Session) map[string]interface{} {
	t.Helper()
	b, err := s.Document()
	if err != nil {
		t.Fatalf("Document() = %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	return doc
}
