package main

import (
	"fmt"

	"github.com/aretw0/inertia"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inertia",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inertia version %s\n", inertia.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
