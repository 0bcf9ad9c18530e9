package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the last changes of a versioned book",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(false)
		subjects, err := book.Store.History(context.Background(), historyLimit)
		if err != nil {
			fatal("Failed to read history", err)
		}
		for _, s := range subjects {
			fmt.Println(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of changes to show")
}
