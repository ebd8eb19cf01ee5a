// ABOUTME: New command for creating notes.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new note",
	Long:  `Create a new note. Content can be provided via --content, --file, or $EDITOR with --edit.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var title string
		if len(args) > 0 {
			title = args[0]
		}

		tagsFlag, _ := cmd.Flags().GetString("tags")
		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		editFlag, _ := cmd.Flags().GetBool("edit")
		folderFlag, _ := cmd.Flags().GetString("folder")

		var content string
		switch {
		case contentFlag != "":
			content = contentFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		case editFlag:
			var err error
			content, err = openEditor("")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		note := ws.NewNote()
		ws.SaveNote(note.ID, title, content, splitTags(tagsFlag))

		if folderFlag != "" {
			folder := findFolder(folderFlag)
			if folder == nil {
				return fmt.Errorf("folder %q not found", folderFlag)
			}
			ws.MoveToFolder(note.ID, folder.ID)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created note %s", shortID(note.ID))))
		return nil
	},
}

func splitTags(flag string) []string {
	var tags []string
	for _, tag := range strings.Split(flag, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "inkwell-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	newCmd.Flags().String("tags", "", "comma-separated tags")
	newCmd.Flags().String("content", "", "note content (inline)")
	newCmd.Flags().String("file", "", "read content from file")
	newCmd.Flags().Bool("edit", false, "open $EDITOR for content")
	newCmd.Flags().String("folder", "", "file the note under this folder (name or id)")
	rootCmd.AddCommand(newCmd)
}
