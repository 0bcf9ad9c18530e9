package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
)

var (
	exportFormat string
	exportOutput string
)

var importCmd = &cobra.Command{
	Use:   "import PATTERN",
	Short: "Merge contacts from files matching PATTERN",
	Long: `Merge contacts from every YAML, JSON or CSV file matching PATTERN.
PATTERN is relative to the book directory and supports ** globs, e.g.
'imports/**/*.{yaml,csv}'. Later files win on name clashes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		n, err := book.Import(context.Background(), args[0])
		if err != nil {
			fatal("Failed to import", err)
		}
		saveBook(book, keeper.CommitTypeFeat, "contacts", fmt.Sprintf("import %d contacts", n))
		success("Imported %d contacts", n)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the book to stdout or a file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(false)

		var w io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				fatal("Failed to create output", err)
			}
			defer f.Close()
			w = f
		}

		if err := book.Export(context.Background(), w, exportFormat); err != nil {
			fatal("Failed to export", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format (yaml, json, csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}
