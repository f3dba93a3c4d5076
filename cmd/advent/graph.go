package main

import (
	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the day 8 network visualization",
	Long:  `Parses the day 8 input and outputs a Mermaid diagram (graph LR) of the node network.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		walkers, _ := cmd.Flags().GetBool("walkers")

		return cli.RunGraph(cli.GraphOptions{
			Options: commonOptions(cmd),
			Input:   input,
			Walkers: walkers,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("input", "i", "", "Read this file instead of <dir>/8.in")
	graphCmd.Flags().Bool("walkers", false, "Highlight ghost start and target nodes")
}
