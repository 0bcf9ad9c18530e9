package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		if err := book.Delete(args[0]); err != nil {
			fatal("Failed to delete contact", err)
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("delete %s", args[0]))
		success("Contact deleted: %s", args[0])
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename OLD NEW",
	Short: "Rename a contact",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		msg, err := book.RenameRecord(args[0], args[1])
		if err != nil {
			fatal("Failed to rename contact", err)
		}
		saveBook(book, keeper.CommitTypeRefactor, "contacts", fmt.Sprintf("rename %s to %s", args[0], args[1]))
		success("%s", msg)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd, renameCmd)
}
