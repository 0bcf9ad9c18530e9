package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
	"github.com/aretw0/keeper/pkg/core"
)

var (
	addPhones   []string
	addBirthday string
	addEmail    string
	addAddress  string
	addOwner    bool
)

// addCmd creates a contact or updates an existing one.
var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a contact or update an existing one",
	Example: `  keeper add Alice --phone 123-456-7890 --birthday 1990-05-17
  keeper add Alice --phone 0987654321 --email alice@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)

		r := book.FindByName(args[0])
		created := r == nil
		if created {
			r = core.NewRecord(args[0])
		}

		for _, p := range addPhones {
			if err := r.AddPhone(p); err != nil {
				fatal("Invalid phone", err)
			}
		}
		if addBirthday != "" {
			if err := r.SetBirthdayAt(addBirthday, book.Now()); err != nil {
				fatal("Invalid birthday", err)
			}
		}
		if cmd.Flags().Changed("email") {
			r.Email = addEmail
		}
		if cmd.Flags().Changed("address") {
			r.Address = addAddress
		}
		if addOwner {
			r.Owner = true
		}

		if err := book.Add(r); err != nil {
			fatal("Failed to add contact", err)
		}

		verb := "update"
		if created {
			verb = "add"
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("%s %s", verb, r.Name()))
		success("Contact %sd: %s", verb, r.Name())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringSliceVarP(&addPhones, "phone", "p", nil, "Phone number (repeatable)")
	addCmd.Flags().StringVar(&addBirthday, "birthday", "", "Birthday as YYYY-MM-DD or DD.MM.YYYY")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Email address")
	addCmd.Flags().StringVar(&addAddress, "address", "", "Postal address")
	addCmd.Flags().BoolVar(&addOwner, "owner", false, "Mark the contact as the owner of the book")
}
