package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCommand = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List supported resource types",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range registry().Types() {
			fmt.Println(t)
		}
	},
}

func init() {
	cmd.AddCommand(listCommand)
}
