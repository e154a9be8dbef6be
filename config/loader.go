package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl2/gohcl"
	"github.com/hashicorp/hcl2/hcl"
	"github.com/hashicorp/hcl2/hclparse"
	"golang.org/x/crypto/ssh/terminal"
)

// A Loader loads configuration files from .hcl files on disk.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load loads all config files from the given root directory, traversing into
// sub directories, and decodes the merged contents into the root
// configuration.
func (l *Loader) Load(root string) (*Root, hcl.Diagnostics) {
	var bodies []hcl.Body
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".hcl" {
			return nil
		}
		f, diags := l.parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return diags
		}
		bodies = append(bodies, f.Body)
		return nil
	})
	if err != nil {
		if d, ok := err.(hcl.Diagnostics); ok {
			return nil, d
		}
		return nil, diagErr(err)
	}
	if len(bodies) == 0 {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "No config files",
			Detail:   fmt.Sprintf("No .hcl files were found in %s.", root),
		}}
	}

	cfg := &Root{}
	diags := gohcl.DecodeBody(hcl.MergeBodies(bodies), nil, cfg)
	if diags.HasErrors() {
		return nil, diags
	}
	return cfg, nil
}

// WriteDiagnostics writes diagnostics as a human readable string to w. It
// should only be used for diagnostics that originate from files loaded by
// this loader.
//
// If a TTY is attached, the output is colorized and wraps at the terminal
// width. Otherwise wrapping occurs at 78 characters and the output contains
// no ANSI escape characters.
func (l *Loader) WriteDiagnostics(w io.Writer, diags hcl.Diagnostics) {
	cols, _, err := terminal.GetSize(0)
	if err != nil {
		cols = 78
	}
	color := terminal.IsTerminal(0)
	wr := hcl.NewDiagnosticTextWriter(w, l.parser.Files(), uint(cols), color)
	if err := wr.WriteDiagnostics(diags); err != nil {
		fmt.Fprintln(w, err)
	}
}

// diagErr converts a native error to diagnostics.
func diagErr(err error) hcl.Diagnostics {
	return hcl.Diagnostics{{Severity: hcl.DiagError, Summary: err.Error()}}
}
