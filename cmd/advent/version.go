package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/advent"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of advent",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "advent version %s\n", strings.TrimSpace(advent.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
