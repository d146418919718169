package cli

import (
	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

var rootCmd = &cobra.Command{
	Use:          "corkboard",
	Short:        "A file-backed bulletin board server",
	Long:         "corkboard is a bulletin-board web application that persists posts and comments as JSON files on local disk.",
	Version:      cliVersion,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
