// ABOUTME: Dup command duplicating a note.
// ABOUTME: The copy gets a fresh id and a " (Copy)" title suffix.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var dupCmd = &cobra.Command{
	Use:     "dup <id>",
	Aliases: []string{"duplicate"},
	Short:   "Duplicate a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		dup, ok := ws.DuplicateNote(id)
		if !ok {
			return fmt.Errorf("note %q not found", args[0])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Created %q (%s)", dup.Title, shortID(dup.ID))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dupCmd)
}
