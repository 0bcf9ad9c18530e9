package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a contact book",
	Long: `Initialize a new contact book in the configured directory.
With versioning enabled this also runs 'git init'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := keeper.Init(cfg.Book.Path,
			keeper.WithAutoInit(true),
			keeper.WithFile(cfg.Book.File),
			keeper.WithVersioning(cfg.Book.Versioning),
			keeper.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize book", err)
		}

		success("Initialized contact book in %s", store.File())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
