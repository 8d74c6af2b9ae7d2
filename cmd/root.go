package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "lumber",
	Short:        "Lumber inventory",
	Long:         "Track a lumber stock by species, dimensions, location and tags.",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dimensionCmd)
}

// Execute runs the CLI; with no subcommand it starts the web server.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
