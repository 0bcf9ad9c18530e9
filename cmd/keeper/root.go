package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper/pkg/config"
)

var (
	verbose   bool
	bookPath  string
	configDir string
	cfg       *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keeper",
	Short: "A personal contact book with phones, birthdays and notes",
	Long: `Keeper stores your contacts in a single YAML, JSON or CSV file.
Every change is saved atomically and, with versioning enabled, committed to git.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		v, err := config.InitViper(configDir)
		if err != nil {
			fatal("Failed to read configuration", err)
		}
		for key, name := range map[string]string{
			"book.path":       "book",
			"book.file":       "file",
			"book.versioning": "versioning",
		} {
			if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				fatal("Failed to bind flag "+name, err)
			}
		}

		cfg, err = config.Load(v)
		if err != nil {
			fatal("Invalid configuration", err)
		}

		level, _ := cfg.Log.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&bookPath, "book", "b", "", "Directory holding the contact book")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory containing keeper.yaml")
	rootCmd.PersistentFlags().String("file", "", "Book file name; its extension selects the format")
	rootCmd.PersistentFlags().Bool("versioning", false, "Commit every change to git")
}
