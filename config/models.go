package config

import (
	"github.com/hashicorp/hcl2/hcl"
)

// A Root is the root structure of a project's configuration, merged from all
// config files.
type Root struct {
	Project   *Project   `hcl:"project,block"`
	Resources []Resource `hcl:"resource,block"`
}

// Project is project wide configuration.
type Project struct {
	// Name is the name of the project.
	Name string `hcl:"name,label"`

	// Region is the region the aws provider is configured with. If not set,
	// no provider block is synthesized.
	Region *string `hcl:"region,optional"`

	// Output is the file the document is written to, relative to the project
	// directory. Defaults to main.tf.json.
	Output *string `hcl:"output,optional"`
}

// OutputFile returns the configured output file name.
func (p *Project) OutputFile() string {
	if p == nil || p.Output == nil {
		return "main.tf.json"
	}
	return *p.Output
}

// Resource is a user specified resource block.
type Resource struct {
	// Name is a unique name for the resource within the project.
	Name string `hcl:"name,label"`

	// Type is the Terraform type name for the resource, matched against the
	// registry.
	Type string `hcl:"type"`

	// Config is the remaining body, decoded against the schema of the
	// resource type.
	Config hcl.Body `hcl:",remain"`
}
