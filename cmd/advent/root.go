package main

import (
	"fmt"
	"os"

	"github.com/aretw0/advent/internal/cli"
	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent solves Advent of Code 2023 puzzles",
	Long: `advent solves Advent of Code 2023 puzzles from input files, and can
serve the solvers over HTTP or as MCP tools.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout)
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().String("dir", "", "Directory containing <day>.in input files (overrides input_dir)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging and walker traces on stderr")
}

// commonOptions reads the persistent flags.
func commonOptions(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Options{
		ConfigPath: configPath,
		InputDir:   dir,
		Debug:      debug,
		Stdout:     cmd.OutOrStdout(),
		Context:    cmd.Context(),
	}
}
