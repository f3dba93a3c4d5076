package main

import (
	"fmt"

	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the day 8 network for consistency",
	Long:  `Crawls the network starting from AAA and reports dead links or unreachable nodes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")

		if err := cli.RunValidate(cli.ValidateOptions{Options: commonOptions(cmd), Input: input}); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Network is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("input", "i", "", "Read this file instead of <dir>/8.in")
}
