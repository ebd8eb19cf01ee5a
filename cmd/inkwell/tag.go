// ABOUTME: Tag command group for adding, removing and listing tags.
// ABOUTME: Tag list aggregates tags across the loaded collection.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage note tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id> <tag>",
	Short: "Add a tag to a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		if !ws.AddTag(id, args[1]) {
			return fmt.Errorf("tag %q is empty or already on the note", args[1])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Tagged %s with %q", shortID(id), args[1])))
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:     "rm <id> <tag>",
	Aliases: []string{"remove"},
	Short:   "Remove a tag from a note",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		if !ws.RemoveTag(id, args[1]) {
			return fmt.Errorf("note %s has no tag %q", shortID(id), args[1])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed %q from %s", args[1], shortID(id))))
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tags in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make(map[string]int)
		for _, note := range ws.Notes.All() {
			for _, tag := range note.Tags {
				counts[tag]++
			}
		}
		if len(counts) == 0 {
			fmt.Println("No tags yet.")
			return nil
		}

		tags := make([]string, 0, len(counts))
		for tag := range counts {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			fmt.Printf("  %s (%d)\n", tag, counts[tag])
		}
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
