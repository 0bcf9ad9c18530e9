package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var (
	listJSON bool
	listSort bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Long: `List all contacts in book order. With --sort the book is reordered by
name and the new order is saved.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(listSort)
		if listSort {
			book.Sort()
			saveBook(book, keeper.CommitTypeStyle, "contacts", "sort by name")
		}

		if listJSON {
			if err := book.Export(context.Background(), os.Stdout, "json"); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		printRecords(book.Records())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listSort, "sort", false, "Sort the book by name")
}
