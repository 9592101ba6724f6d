package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Actual version can be specified in the build command.
var version = "unknown"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("resume_screener version: %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCommand)
}
