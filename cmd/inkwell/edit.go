// ABOUTME: Edit command updating a note's title, content or tags.
// ABOUTME: With no flags the note content opens in $EDITOR.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		note := ws.Notes.Get(id)

		title := note.Title
		content := note.Content
		tags := note.Tags

		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("tags") {
			tagsFlag, _ := cmd.Flags().GetString("tags")
			tags = splitTags(tagsFlag)
		}

		switch {
		case cmd.Flags().Changed("content"):
			content, _ = cmd.Flags().GetString("content")
		case !cmd.Flags().Changed("title") && !cmd.Flags().Changed("tags"):
			content, err = openEditor(note.Content)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		if !ws.SaveNote(id, title, content, tags) {
			return fmt.Errorf("note %q not found", args[0])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Updated note %s", shortID(id))))
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("content", "", "new content (inline)")
	editCmd.Flags().String("tags", "", "replace tags (comma-separated)")
	rootCmd.AddCommand(editCmd)
}
