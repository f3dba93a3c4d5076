package main

import (
	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle and print both parts",
	Long: `Reads <dir>/<day>.in (or --input) and prints:

  result (part one): N
  result (part two): N`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, _ := cmd.Flags().GetInt("day")
		all, _ := cmd.Flags().GetBool("all")
		input, _ := cmd.Flags().GetString("input")
		jsonMode, _ := cmd.Flags().GetBool("json")
		pretty, _ := cmd.Flags().GetBool("pretty")

		return cli.RunSolve(cli.SolveOptions{
			Options: commonOptions(cmd),
			Day:     day,
			All:     all,
			Input:   input,
			JSON:    jsonMode,
			Pretty:  pretty,
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntP("day", "d", 8, "Puzzle day to solve")
	solveCmd.Flags().Bool("all", false, "Solve every day with an input file")
	solveCmd.Flags().StringP("input", "i", "", "Read this file instead of <dir>/<day>.in")
	solveCmd.Flags().Bool("json", false, "Print the answer as JSON")
	solveCmd.Flags().Bool("pretty", false, "Render a markdown report")
	solveCmd.MarkFlagsMutuallyExclusive("all", "day")
	solveCmd.MarkFlagsMutuallyExclusive("all", "input")
	solveCmd.MarkFlagsMutuallyExclusive("json", "pretty")
}
