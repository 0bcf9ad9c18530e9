package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper/pkg/core"
)

var (
	findPhone string
	findName  string
	findAll   bool
	birthDays int
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find contacts by phone or name",
	Example: `  keeper find --phone 1234567890
  keeper find --phone 1234567890 --all
  keeper find --name Alice`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if (findPhone == "") == (findName == "") {
			fatal("Invalid arguments", errors.New("use exactly one of --phone or --name"))
		}

		book := openBook(false)
		var found []*core.Record
		switch {
		case findName != "":
			if r := book.FindByName(findName); r != nil {
				found = append(found, r)
			}
		case findAll:
			found = book.FindAllByPhone(findPhone)
		default:
			if r := book.FindByPhone(findPhone); r != nil {
				found = append(found, r)
			}
		}
		printRecords(found)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search FIELD VALUE",
	Short: "Search contacts by field",
	Long: `Search contacts by field. FIELD is one of phone, phones, note, tag, all
or a contact attribute (name, birthday, email, address, owner).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(false)
		printRecords(book.FindByField(args[0], args[1]))
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List contacts with a birthday in the next days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		days := cfg.Birthdays.Window
		if cmd.Flags().Changed("days") {
			days = birthDays
		}

		book := openBook(false)
		upcoming := book.UpcomingBirthdays(days)
		if len(upcoming) == 0 {
			printRecords(nil)
			return
		}
		today := book.Now()
		for _, r := range upcoming {
			n, _ := r.DaysToBirthday(today)
			success("%s in %d days (%s)", r.Name(), n, r.Birthday)
		}
	},
}

func init() {
	rootCmd.AddCommand(findCmd, searchCmd, birthdaysCmd)
	findCmd.Flags().StringVar(&findPhone, "phone", "", "Phone number to look up")
	findCmd.Flags().StringVar(&findName, "name", "", "Exact contact name")
	findCmd.Flags().BoolVar(&findAll, "all", false, "List every contact holding the phone")
	birthdaysCmd.Flags().IntVarP(&birthDays, "days", "d", 7, "Window size in days (defaults to birthdays.window)")
}
