package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCommand = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the project configuration without writing output",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		s, _ := synthesize(dir)
		fmt.Printf("Configuration valid, %d resources\n", s.Len())
	},
}

func init() {
	cmd.AddCommand(validateCommand)
}
