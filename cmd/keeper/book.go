package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/keeper"
)

// openBook opens the configured book. Books opened without write access
// are read-only and never touch the disk.
func openBook(write bool) *keeper.Book {
	opts := []keeper.Option{
		keeper.WithFile(cfg.Book.File),
		keeper.WithVersioning(cfg.Book.Versioning),
		keeper.WithStrict(cfg.Book.Strict),
		keeper.WithReadOnly(cfg.Book.ReadOnly || !write),
		keeper.WithLogger(slog.Default()),
	}
	if write {
		opts = append(opts, keeper.WithAutoInit(true))
	}

	book, err := keeper.Open(cfg.Book.Path, opts...)
	if err != nil {
		fatal("Failed to open book", err)
	}
	return book
}

// saveBook persists book. The change reason becomes the commit message when
// the book is versioned.
func saveBook(book *keeper.Book, ctype, scope, subject string) {
	reason := keeper.FormatChangeReason(ctype, scope, subject, "")
	if err := book.Save(context.Background(), reason); err != nil {
		fatal("Failed to save book", err)
	}
}

// mustRecord returns the record called name or exits.
func mustRecord(book *keeper.Book, name string) *keeper.Record {
	r := book.FindByName(name)
	if r == nil {
		fatal("Contact not found", errNoContact(name))
	}
	return r
}
