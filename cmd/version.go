package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobrace",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobrace v%s\n", version.Version)
		fmt.Println("Steel Brace Connection Checker")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
