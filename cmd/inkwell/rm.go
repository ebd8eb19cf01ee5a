// ABOUTME: Rm command deleting a note.
// ABOUTME: Deleting the last note leaves one blank note behind.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		note := ws.Notes.Get(id)
		title := note.Title
		if title == "" {
			title = "Untitled note"
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Delete %q? [y/N]: ", title)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" && answer != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		ws.DeleteNote(id)
		fmt.Println(ui.Success(fmt.Sprintf("Deleted %q", title)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
