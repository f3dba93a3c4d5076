package main

import (
	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the solvers as a JSON API over HTTP:

  GET  /days         registered puzzles
  POST /solve/{day}  raw puzzle input in, answer out
  GET  /metrics      Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := ""
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}
		return cli.RunServe(cli.ServeOptions{Options: commonOptions(cmd), Port: port})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on (overrides server.port)")
}
