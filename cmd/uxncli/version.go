package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// versionCmd returns the caller's installed uxncli version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed uxncli version",
	Long:  "Run `uxncli version` to get your current uxncli version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("The version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(currentReleaseVersion)
}
