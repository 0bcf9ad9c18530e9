package keeper_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/aretw0/keeper"
)

// Example_basic opens a book, adds a contact, saves it and reads it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "keeper-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	book, err := keeper.Open(tmpDir, keeper.WithAutoInit(true))
	if err != nil {
		log.Fatal(err)
	}

	r := keeper.NewRecord("Alice")
	if err := r.AddPhone("123-456-7890"); err != nil {
		log.Fatal(err)
	}
	if err := book.Add(r); err != nil {
		log.Fatal(err)
	}
	if err := book.Save(context.Background(), "feat(contacts): add alice"); err != nil {
		log.Fatal(err)
	}

	again, err := keeper.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(again.FindByPhone("1234567890").Name())
	// Output:
	// Alice
}

// Example_birthdays lists contacts whose birthday falls within a week.
func Example_birthdays() {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	d := keeper.NewDirectory(keeper.WithDirectoryClock(mock))

	for name, date := range map[string]string{"Alice": "1990-03-12", "Bob": "1985-04-20"} {
		r := keeper.NewRecord(name)
		if err := r.SetBirthday(date); err != nil {
			log.Fatal(err)
		}
		if err := d.Add(r); err != nil {
			log.Fatal(err)
		}
	}

	for _, r := range d.UpcomingBirthdays(7) {
		days, _ := r.DaysToBirthday(d.Now())
		fmt.Printf("%s in %d days\n", r.Name(), days)
	}
	// Output:
	// Alice in 2 days
}
