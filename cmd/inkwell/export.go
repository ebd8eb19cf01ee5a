// ABOUTME: Export command writing the visible notes as text, markdown or HTML.
// ABOUTME: Output goes to stdout unless --output names a file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/export"
	"github.com/inkwell-notes/inkwell/internal/query"
	"github.com/inkwell-notes/inkwell/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export notes as plain text, markdown or a printable HTML document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		allFlag, _ := cmd.Flags().GetBool("all")

		if allFlag {
			ws.SetScope(query.Everything())
		}
		visible := ws.View()

		var out string
		switch format {
		case "text", "txt":
			out = export.Text(visible)
		case "markdown", "md":
			out = export.Markdown(visible)
		case "html":
			var err error
			out, err = export.HTML(visible)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want text, markdown or html)", format)
		}

		if output == "" {
			fmt.Print(out)
			return nil
		}
		if err := os.WriteFile(output, []byte(out), 0o644); err != nil { //nolint:gosec // Export files are user documents
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Exported %d note(s) to %s", len(visible), output)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "text", "export format: text, markdown, html")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().Bool("all", false, "export every note, not just the current view")
	rootCmd.AddCommand(exportCmd)
}
