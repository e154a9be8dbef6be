package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terrasynth/terrasynth/config"
)

func TestLoaderLoad(t *testing.T) {
	l := config.NewLoader()
	cfg, diags := l.Load("testdata/project")
	if diags.HasErrors() {
		t.Fatalf("Load() = %v", diags)
	}

	if cfg.Project == nil {
		t.Fatal("Load() project = nil")
	}
	if cfg.Project.Name != "example" {
		t.Errorf("project name = %q, want %q", cfg.Project.Name, "example")
	}
	if cfg.Project.Region == nil || *cfg.Project.Region != "eu-west-1" {
		t.Errorf("project region = %v, want eu-west-1", cfg.Project.Region)
	}
	if got, want := cfg.Project.OutputFile(), "main.tf.json"; got != want {
		t.Errorf("OutputFile() = %q, want %q", got, want)
	}

	got := make(map[string]string, len(cfg.Resources))
	for _, r := range cfg.Resources {
		got[r.Name] = r.Type
	}
	want := map[string]string{
		"jobs":   "aws_sqs_queue",
		"alerts": "aws_sns_topic",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Load() resources (-got +want)\n%s", diff)
	}
}

func TestLoaderLoad_noFiles(t *testing.T) {
	l := config.NewLoader()
	_, diags := l.Load(t.TempDir())
	if !diags.HasErrors() {
		t.Error("Load() = nil, want diagnostics")
	}
}

func TestLoaderLoad_notFound(t *testing.T) {
	l := config.NewLoader()
	_, diags := l.Load("testdata/nonexisting")
	if !diags.HasErrors() {
		t.Error("Load() = nil, want diagnostics")
	}
}
