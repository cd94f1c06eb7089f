package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info for modelgen
// These variables are injected at build time via ldflags
var (
	// Version is the current version of modelgen
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit that was compiled
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "modelgen v%s\n", Version)
		fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
		fmt.Fprintf(out, "Build time: %s\n", BuildTime)
		return nil
	},
}
