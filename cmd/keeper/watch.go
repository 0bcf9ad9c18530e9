package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
	"github.com/aretw0/keeper/pkg/adapters/lifecycle"
	"github.com/aretw0/keeper/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes of the book file until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		book, err := keeper.Open(cfg.Book.Path,
			keeper.WithFile(cfg.Book.File),
			keeper.WithReadOnly(true),
			keeper.WithLogger(slog.Default()),
			keeper.WithWatcherErrorHandler(func(err error) {
				fmt.Fprintln(os.Stderr, errorStyle.Render("watch: "+err.Error()))
			}),
		)
		if err != nil {
			fatal("Failed to open book", err)
		}

		events, err := book.Watch(ctx)
		if err != nil {
			fatal("Failed to watch book", err)
		}

		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println(helpStyle.Render("Watching " + book.Store.File() + " (Ctrl+C to stop)"))
		for e := range src.Events() {
			line := time.Now().Format(time.TimeOnly) + " " + e.String()
			if ev, ok := e.(core.Event); ok && ev.Type != core.EventDelete {
				if err := book.Reload(ctx); err == nil {
					line += fmt.Sprintf(" (%d contacts)", book.Len())
				}
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
