package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terrasynth/terrasynth/config"
	"github.com/terrasynth/terrasynth/provider/aws"
	"github.com/terrasynth/terrasynth/resource"
	"github.com/terrasynth/terrasynth/synth"
	"go.uber.org/zap"
)

var cmd = &cobra.Command{
	Use:           "terrasynth",
	Short:         "Synthesize Terraform JSON from typed resource configuration",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var verbose bool

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log synthesis details")
}

func logger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		fatal(err)
	}
	return l
}

func registry() *resource.Registry {
	reg := &resource.Registry{}
	aws.Register(reg)
	return reg
}

// synthesize loads the project in dir and synthesizes every resource. Exits
// with diagnostics on stderr if the configuration does not load or does not
// validate.
func synthesize(dir string) (*synth.Session, *config.Root) {
	l := config.NewLoader()
	cfg, diags := l.Load(dir)
	if diags.HasErrors() {
		l.WriteDiagnostics(os.Stderr, diags)
		os.Exit(1)
	}

	s := synth.New(synth.WithLogger(logger()))
	if cfg.Project != nil && cfg.Project.Region != nil {
		p := aws.Provider{Region: *cfg.Project.Region}
		if err := p.Configure(s); err != nil {
			fatal(err)
		}
	}

	d := &config.Decoder{Registry: registry()}
	if diags := d.Decode(cfg, s); diags.HasErrors() {
		l.WriteDiagnostics(os.Stderr, diags)
		os.Exit(1)
	}
	return s, cfg
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
