package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Activation-graph reasoning toy",
	Long:  "Nexus propagates energy through small weighted knowledge graphs, ranks confluence points and derives principles. Single Go binary, in-memory only.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(alertCmd)
	rootCmd.AddCommand(versionCmd)
}
