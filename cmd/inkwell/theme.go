// ABOUTME: Theme command showing and setting the workspace theme.
// ABOUTME: Also sets a note's editor pattern via --pattern.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/models"
	"github.com/inkwell-notes/inkwell/internal/ui"
)

var themeNames = []string{"amoled-dark", "professional-light", "corporate-gray", "minimal-white"}

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Show or set the workspace theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			current := ws.Theme()
			for _, name := range themeNames {
				marker := "  "
				if name == current {
					marker = "* "
				}
				fmt.Printf("%s%s\n", marker, name)
			}
			return nil
		}

		name := args[0]
		if models.NormalizeTheme(name) != name {
			return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(themeNames, ", "))
		}
		ws.SetTheme(name)
		fmt.Println(ui.Success(fmt.Sprintf("Theme set to %s", name)))
		return nil
	},
}

var patternCmd = &cobra.Command{
	Use:   "pattern <id> <pattern>",
	Short: "Set a note's editor pattern (plain, lined, grid, dotted)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveNote(args[0])
		if err != nil {
			return err
		}
		if !ws.Notes.SetEditorPattern(id, args[1]) {
			return fmt.Errorf("unknown pattern %q (want plain, lined, grid or dotted)", args[1])
		}
		fmt.Println(ui.Success(fmt.Sprintf("Pattern for %s set to %s", shortID(id), args[1])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(patternCmd)
}
