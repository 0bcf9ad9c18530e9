package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var ownerCmd = &cobra.Command{
	Use:   "owner [NAME]",
	Short: "Show the owner of the book, or make NAME the owner",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			book := openBook(false)
			owner := book.Owner()
			if owner == nil {
				fmt.Println(helpStyle.Render("No owner set."))
				return
			}
			fmt.Println(renderRecord(owner))
			return
		}

		book := openBook(true)
		if err := book.SetOwner(args[0]); err != nil {
			fatal("Failed to set owner", err)
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("set owner %s", args[0]))
		success("Owner set: %s", args[0])
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
}
