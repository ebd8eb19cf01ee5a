// ABOUTME: Show command rendering a single note to the terminal.
// ABOUTME: Content is converted to markdown and rendered with glamour.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"view", "cat"},
	Short:   "Show a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		note := ws.Notes.Get(id)

		var folderName string
		if note.FolderID != "" {
			if f := ws.Folders.Get(note.FolderID); f != nil {
				folderName = f.Name
			}
		}
		fmt.Print(ui.FormatNoteHeader(*note, folderName))
		fmt.Println(ui.FormatNoteContent(note.Content))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
