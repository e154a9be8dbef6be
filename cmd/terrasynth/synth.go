package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
)

var synthCommand = &cobra.Command{
	Use:   "synth [dir]",
	Short: "Synthesize the project into a Terraform JSON file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("Get out: %v", err)
		}

		s, cfg := synthesize(dir)

		target := filepath.Join(dir, cfg.Project.OutputFile())
		if out != "" {
			target = out
		}

		doc, err := s.Document()
		if err != nil {
			fatal(err)
		}
		if err := ioutil.WriteFile(target, doc, 0644); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d resources to %s\n", s.Len(), target)
	},
}

func init() {
	synthCommand.Flags().String("out", "", "Output file, overrides the project setting")
	cmd.AddCommand(synthCommand)
}
