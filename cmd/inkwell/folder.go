// ABOUTME: Folder command group for creating, listing, renaming and deleting folders.
// ABOUTME: Deleting a folder unfiles its notes instead of removing them.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var folderCmd = &cobra.Command{
	Use:     "folder",
	Aliases: []string{"folders"},
	Short:   "Manage folders",
}

var folderNewCmd = &cobra.Command{
	Use:     "new [name]",
	Aliases: []string{"create"},
	Short:   "Create a folder",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		folder := ws.CreateFolder(name)
		fmt.Println(ui.Success(fmt.Sprintf("Created folder %q", folder.Name)))
		return nil
	},
}

var folderLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := ws.Folders.All()
		if len(all) == 0 {
			fmt.Println("No folders yet.")
			return nil
		}

		counts := make(map[string]int)
		for _, note := range ws.Notes.All() {
			if note.FolderID != "" {
				counts[note.FolderID]++
			}
		}
		activeFolder := ws.Scope().FolderID()
		for _, folder := range all {
			fmt.Println(ui.FormatFolderListItem(folder, counts[folder.ID], folder.ID == activeFolder))
		}
		return nil
	},
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <folder> <name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := findFolder(args[0])
		if folder == nil {
			return fmt.Errorf("folder %q not found", args[0])
		}
		if !ws.RenameFolder(folder.ID, args[1]) {
			return fmt.Errorf("folder %q not found", args[0])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Renamed %q to %q", folder.Name, args[1])))
		return nil
	},
}

var folderRmCmd = &cobra.Command{
	Use:     "rm <folder>",
	Aliases: []string{"delete"},
	Short:   "Delete a folder (notes inside become unfiled)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := findFolder(args[0])
		if folder == nil {
			return fmt.Errorf("folder %q not found", args[0])
		}
		if !ws.DeleteFolder(folder.ID) {
			return fmt.Errorf("folder %q not found", args[0])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Deleted folder %q", folder.Name)))
		return nil
	},
}

func init() {
	folderCmd.AddCommand(folderNewCmd)
	folderCmd.AddCommand(folderLsCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderRmCmd)
	rootCmd.AddCommand(folderCmd)
}
