package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a contact with its notes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(false)
		r := mustRecord(book, args[0])
		fmt.Println(renderCard(r, book.Now()))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
