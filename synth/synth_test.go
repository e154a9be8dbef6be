package synth

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestSessionDocument(t *testing.T) {
	s := New()

	err := s.Resource("aws_sns_topic", "events", func(b *Block) {
		b.Set("name", "events")
		b.Map("tags", map[string]string{"env": "prod"})
	})
	if err != nil {
		t.Fatalf("Resource() = %v", err)
	}
	err = s.Resource("aws_security_group", "web", func(b *Block) {
		b.Set("name", "web")
		b.Block("ingress", func(b *Block) {
			b.Set("from_port", 443)
			b.Set("to_port", 443)
			b.Set("protocol", "tcp")
		})
		b.Block("ingress", func(b *Block) {
			b.Set("from_port", 80)
			b.Set("to_port", 80)
			b.Set("protocol", "tcp")
		})
		b.Block("egress", func(b *Block) {
			b.Set("protocol", "-1")
		})
	})
	if err != nil {
		t.Fatalf("Resource() = %v", err)
	}
	if err := s.Data("aws_caller_identity", "current", func(b *Block) {}); err != nil {
		t.Fatalf("Data() = %v", err)
	}
	if err := s.Provider("aws", func(b *Block) { b.Set("region", "eu-west-1") }); err != nil {
		t.Fatalf("Provider() = %v", err)
	}
	if err := s.Output("topic_arn", "${aws_sns_topic.events.arn}"); err != nil {
		t.Fatalf("Output() = %v", err)
	}
	err = s.Terraform(func(b *Block) { b.Set("required_version", ">= 0.12") })
	if err != nil {
		t.Fatalf("Terraform() = %v", err)
	}

	if got, want := s.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	doc, err := s.Document()
	if err != nil {
		t.Fatalf("Document() = %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(doc, &got); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	want := map[string]interface{}{
		"resource": map[string]interface{}{
			"aws_sns_topic": map[string]interface{}{
				"events": map[string]interface{}{
					"name": "events",
					"tags": map[string]interface{}{"env": "prod"},
				},
			},
			"aws_security_group": map[string]interface{}{
				"web": map[string]interface{}{
					"name": "web",
					// Repeated blocks become an array, single blocks an object.
					"ingress": []interface{}{
						map[string]interface{}{
							"from_port": float64(443),
							"to_port":   float64(443),
							"protocol":  "tcp",
						},
						map[string]interface{}{
							"from_port": float64(80),
							"to_port":   float64(80),
							"protocol":  "tcp",
						},
					},
					"egress": map[string]interface{}{
						"protocol": "-1",
					},
				},
			},
		},
		"data": map[string]interface{}{
			"aws_caller_identity": map[string]interface{}{
				"current": map[string]interface{}{},
			},
		},
		"provider": map[string]interface{}{
			"aws": map[string]interface{}{"region": "eu-west-1"},
		},
		"output": map[string]interface{}{
			"topic_arn": map[string]interface{}{"value": "${aws_sns_topic.events.arn}"},
		},
		"terraform": map[string]interface{}{
			"required_version": ">= 0.12",
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Document() (-got +want)\n%s", diff)
	}
}

func TestSessionDuplicate(t *testing.T) {
	s := New()
	if err := s.Resource("aws_sqs_queue", "q", func(b *Block) {}); err != nil {
		t.Fatalf("Resource() = %v", err)
	}
	err := s.Resource("aws_sqs_queue", "q", func(b *Block) {})
	want := DuplicateError{Kind: KindResource, Type: "aws_sqs_queue", Name: "q"}
	if err != want {
		t.Errorf("Resource() = %v, want %v", err, want)
	}

	// Same name under a different kind or type is fine.
	if err := s.Data("aws_sqs_queue", "q", func(b *Block) {}); err != nil {
		t.Errorf("Data() = %v", err)
	}
	if err := s.Resource("aws_sns_topic", "q", func(b *Block) {}); err != nil {
		t.Errorf("Resource() = %v", err)
	}
}

func TestSessionBlockError(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	err := s.Resource("aws_sqs_queue", "q", func(b *Block) {
		b.Fail(boom)
	})
	serr, ok := err.(SynthError)
	if !ok {
		t.Fatalf("Resource() = %T, want SynthError", err)
	}
	if serr.Kind != KindResource || serr.Type != "aws_sqs_queue" || serr.Name != "q" {
		t.Errorf("SynthError = %+v", serr)
	}
	if errors.Cause(serr) != boom {
		t.Errorf("Cause() = %v, want %v", errors.Cause(serr), boom)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after failed block", s.Len())
	}
}

func TestSessionEmpty(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Error("Empty() = false for new session")
	}
	if err := s.Output("name", "x"); err != nil {
		t.Fatalf("Output() = %v", err)
	}
	if s.Empty() {
		t.Error("Empty() = true after output")
	}
}

func TestSessionID(t *testing.T) {
	a, b := New(), New()
	if a.ID() == "" {
		t.Error("ID() = empty")
	}
	if a.ID() == b.ID() {
		t.Error("ID() not unique between sessions")
	}
}
