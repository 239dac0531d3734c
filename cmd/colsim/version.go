package main

import (
	"fmt"
	"runtime"

	"github.com/reglet-dev/colsim/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// Set by build flags.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of colsim",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "colsim version %s (%s) built %s %s %s/%s\n",
			buildVersion, buildCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(cmd.OutOrStdout(), "definition formats: %s\n", config.SupportedDefinitionVersions)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
