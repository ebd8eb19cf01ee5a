// ABOUTME: Move command filing a note into a folder.
// ABOUTME: Moving to "unfiled" clears the note's folder.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var moveCmd = &cobra.Command{
	Use:     "move <id> <folder>",
	Aliases: []string{"mv"},
	Short:   "Move a note into a folder (use \"unfiled\" to unfile it)",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}

		if args[1] == "unfiled" {
			ws.MoveToFolder(id, "")
			fmt.Println(ui.Success(fmt.Sprintf("Unfiled note %s", shortID(id))))
			return nil
		}

		folder := findFolder(args[1])
		if folder == nil {
			return fmt.Errorf("folder %q not found", args[1])
		}
		if !ws.MoveToFolder(id, folder.ID) {
			return fmt.Errorf("failed to move note %s", shortID(id))
		}
		fmt.Println(ui.Success(fmt.Sprintf("Moved %s to %q", shortID(id), folder.Name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
