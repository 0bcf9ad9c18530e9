package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/keeper"
	"github.com/aretw0/keeper/pkg/core"
)

var (
	noteTags      []string
	noteFindTag   string
	noteRemoveTag bool
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes attached to contacts",
}

var noteAddCmd = &cobra.Command{
	Use:   "add NAME TITLE [BODY]",
	Short: "Attach a note to a contact",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		r := mustRecord(book, args[0])

		body := ""
		if len(args) == 3 {
			body = args[2]
		}
		n, err := core.NewNote(args[1], body, noteTags...)
		if err != nil {
			fatal("Invalid note", err)
		}
		if err := r.AddNote(n); err != nil {
			fatal("Failed to add note", err)
		}

		saveBook(book, keeper.CommitTypeFeat, "notes", fmt.Sprintf("add %q to %s", n.Title, r.Name()))
		success("Note added to %s", r.Name())
	},
}

var noteFindCmd = &cobra.Command{
	Use:   "find [TITLE]",
	Short: "Find a note by title or list notes by tag",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if (len(args) == 0) == (noteFindTag == "") {
			fatal("Invalid arguments", errors.New("give a TITLE or --tag"))
		}

		book := openBook(false)
		var notes []*core.Note
		if noteFindTag != "" {
			notes = book.FindNotesByTag(noteFindTag)
		} else if n := book.FindNoteByTitle(args[0]); n != nil {
			notes = append(notes, n)
		}

		if len(notes) == 0 {
			fmt.Println(helpStyle.Render("No notes found."))
			return
		}
		for _, n := range notes {
			fmt.Println(renderNote(n))
		}
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete TITLE",
	Short: "Delete the first note with the given title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		if !book.DeleteNoteByTitle(args[0]) {
			fmt.Println(helpStyle.Render("No note titled " + args[0] + "."))
			return
		}
		saveBook(book, keeper.CommitTypeFeat, "notes", fmt.Sprintf("delete %q", args[0]))
		success("Note deleted: %s", args[0])
	},
}

var noteTagCmd = &cobra.Command{
	Use:   "tag TITLE TAG",
	Short: "Add a tag to a note (or remove it with --remove)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		book := openBook(true)
		n := book.FindNoteByTitle(args[0])
		if n == nil {
			fatal("Note not found", fmt.Errorf("%w: %s", core.ErrNotFound, args[0]))
		}

		var changed bool
		if noteRemoveTag {
			changed = n.RemoveTag(args[1])
		} else {
			changed = n.AddTag(args[1])
		}
		if !changed {
			fmt.Println(helpStyle.Render("Nothing to change."))
			return
		}

		saveBook(book, keeper.CommitTypeFeat, "notes", fmt.Sprintf("tag %q", n.Title))
		success("Tags of %s: %v", n.Title, n.Tags)
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteFindCmd, noteDeleteCmd, noteTagCmd)
	noteAddCmd.Flags().StringSliceVarP(&noteTags, "tag", "t", nil, "Tag (repeatable)")
	noteFindCmd.Flags().StringVarP(&noteFindTag, "tag", "t", "", "List notes carrying this tag")
	noteTagCmd.Flags().BoolVar(&noteRemoveTag, "remove", false, "Remove the tag instead of adding it")
}
