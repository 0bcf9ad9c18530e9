// Package keeper is a personal contact book.
//
// A book is an ordered directory of records, each holding a unique name,
// validated phone numbers, an optional birthday, free-form email and address
// fields and a list of tagged notes. One record may be marked as the owner
// of the book.
//
// The directory lives in memory (see pkg/core) and is persisted as a single
// YAML, JSON or CSV file by pkg/adapters/fs, optionally committing every save
// to git.
//
// Usage:
//
//	book, err := keeper.Open("./contacts",
//		keeper.WithAutoInit(true),
//		keeper.WithLogger(logger),
//	)
//
//	r := keeper.NewRecord("Alice")
//	_ = r.AddPhone("1234567890")
//	_ = book.Add(r)
//
//	for _, r := range book.UpcomingBirthdays(7) {
//		fmt.Println(r)
//	}
//
//	_ = book.Save(ctx, "feat(contacts): add alice")
package keeper
