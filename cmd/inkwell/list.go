// ABOUTME: List command showing notes through the query pipeline.
// ABOUTME: Flags map onto scope, tag, search, date and sort controls.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/query"
	"github.com/inkwell-notes/inkwell/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long:    `List notes. By default shows unfiled notes; use --all for every note or --folder to scope to a folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		folderFlag, _ := cmd.Flags().GetString("folder")
		allFlag, _ := cmd.Flags().GetBool("all")
		tagFlag, _ := cmd.Flags().GetString("tag")
		searchFlag, _ := cmd.Flags().GetString("search")
		dateFlag, _ := cmd.Flags().GetString("date")
		sortFlag, _ := cmd.Flags().GetString("sort")
		limitFlag, _ := cmd.Flags().GetInt("limit")

		switch {
		case allFlag:
			ws.SetScope(query.Everything())
		case folderFlag != "":
			folder := findFolder(folderFlag)
			if folder == nil {
				return fmt.Errorf("folder %q not found", folderFlag)
			}
			ws.SetScope(query.Folder(folder.ID))
		default:
			ws.SetScope(query.Unfiled())
		}

		if tagFlag != "" {
			ws.SetFilterTag(tagFlag)
		}
		ws.SetSearch(searchFlag)
		ws.SetDate(dateFlag)
		if sortFlag != "" {
			ws.SetSort(query.SortMode(sortFlag))
		}

		visible := ws.View()
		if len(visible) == 0 {
			fmt.Println("No notes found.")
			return nil
		}
		if limitFlag > 0 && len(visible) > limitFlag {
			visible = visible[:limitFlag]
		}

		for _, note := range visible {
			var folderName string
			if note.FolderID != "" {
				if f := ws.Folders.Get(note.FolderID); f != nil {
					folderName = f.Name
				}
			}
			fmt.Println(ui.FormatNoteListItem(note, folderName))
		}
		fmt.Printf("\n%d note(s)\n", len(visible))
		return nil
	},
}

func init() {
	listCmd.Flags().String("folder", "", "scope to a folder (name or id)")
	listCmd.Flags().Bool("all", false, "show notes from every folder")
	listCmd.Flags().String("tag", "", "filter by tag (\"all\" clears the filter)")
	listCmd.Flags().String("search", "", "match text in title, content or tags")
	listCmd.Flags().String("date", "", "only notes from this local date (YYYY-MM-DD)")
	listCmd.Flags().String("sort", "", "sort mode: updated_desc, updated_asc, title_asc, title_desc")
	listCmd.Flags().IntP("limit", "n", 0, "show at most n notes")
	rootCmd.AddCommand(listCmd)
}
