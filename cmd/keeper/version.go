package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of keeper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("keeper version %s\n", strings.TrimSpace(keeper.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
