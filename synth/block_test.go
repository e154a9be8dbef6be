package synth

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

func TestBlockSet(t *testing.T) {
	strptr := func(v string) *string { return &v }

	b := newBlock()
	b.Set("name", "jobs")
	b.Set("delay", 30)
	b.Set("fifo", true)
	b.Set("prefix", (*string)(nil)) // nil pointer leaves attribute unset
	b.Set("suffix", strptr(".fifo"))
	b.Set("layers", []string{"a", "b"})
	b.Map("tags", nil) // empty map leaves attribute unset
	b.SetValue("computed", cty.StringVal("x"))
	b.SetValue("skipped", cty.NullVal(cty.String))

	if err := b.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"name":     "jobs",
		"delay":    float64(30),
		"fifo":     true,
		"suffix":   ".fifo",
		"layers":   []interface{}{"a", "b"},
		"computed": "x",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Marshal() (-got +want)\n%s", diff)
	}
}

func TestBlockSetStruct(t *testing.T) {
	type statement struct {
		Effect  string
		Actions []string
	}
	b := newBlock()
	b.Set("statement", statement{Effect: "Allow", Actions: []string{"s3:GetObject"}})
	if err := b.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	want := `{"statement":{"actions":["s3:GetObject"],"effect":"Allow"}}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}
}

func TestBlockList(t *testing.T) {
	b := newBlock()
	b.Block("logging", func(nested *Block) {
		nested.Set("target_bucket", "logs")
	})
	b.List("ingress", func(nested *Block) {
		nested.Set("protocol", "tcp")
	})

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		// A single block is an object, a single-element list stays an
		// array.
		"logging": map[string]interface{}{"target_bucket": "logs"},
		"ingress": []interface{}{
			map[string]interface{}{"protocol": "tcp"},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Marshal() (-got +want)\n%s", diff)
	}
}

func TestBlockNestedError(t *testing.T) {
	b := newBlock()
	b.Block("outer", func(nested *Block) {
		nested.Fail(errors.New("bad attribute"))
	})
	if b.Err() == nil {
		t.Error("Err() = nil, want error from nested block")
	}
}
