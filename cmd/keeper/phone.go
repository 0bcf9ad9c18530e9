package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Manage the phone numbers of a contact",
}

var phoneAddCmd = &cobra.Command{
	Use:   "add NAME PHONE",
	Short: "Add a phone number",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		r := mustRecord(book, args[0])
		if err := r.AddPhone(args[1]); err != nil {
			fatal("Failed to add phone", err)
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("add phone to %s", r.Name()))
		success("Phone added to %s", r.Name())
	},
}

var phoneEditCmd = &cobra.Command{
	Use:   "edit NAME OLD NEW",
	Short: "Replace a phone number",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		r := mustRecord(book, args[0])
		if err := r.EditPhone(args[1], args[2]); err != nil {
			fatal("Failed to edit phone", err)
		}
		saveBook(book, keeper.CommitTypeFix, "contacts", fmt.Sprintf("edit phone of %s", r.Name()))
		success("Phone of %s updated", r.Name())
	},
}

var phoneRemoveCmd = &cobra.Command{
	Use:   "remove NAME PHONE",
	Short: "Remove a phone number",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		r := mustRecord(book, args[0])
		if err := r.RemovePhone(args[1]); err != nil {
			fatal("Failed to remove phone", err)
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("remove phone of %s", r.Name()))
		success("Phone removed from %s", r.Name())
	},
}

func init() {
	rootCmd.AddCommand(phoneCmd)
	phoneCmd.AddCommand(phoneAddCmd, phoneEditCmd, phoneRemoveCmd)
}
