// ABOUTME: Terminal formatting for inkwell output.
// ABOUTME: Uses glamour for note bodies and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/inkwell-notes/inkwell/internal/export"
	"github.com/inkwell-notes/inkwell/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatNoteListItem(note models.Note, folderName string) string {
	var sb strings.Builder

	idPrefix := note.ID
	if len(idPrefix) > 6 {
		idPrefix = idPrefix[:6]
	}
	title := note.Title
	if title == "" {
		title = "Untitled note"
	}
	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(idPrefix), bold(title)))

	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(note.Tags, ", "))))
	}
	if folderName != "" {
		sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Folder:"), folderName))
	}
	sb.WriteString(fmt.Sprintf("         %s %s\n",
		faint("Updated:"),
		faint(displayTime(note.UpdatedAt))))

	return sb.String()
}

func FormatNoteHeader(note models.Note, folderName string) string {
	var sb strings.Builder

	title := note.Title
	if title == "" {
		title = "Untitled note"
	}
	sb.WriteString(fmt.Sprintf("%s\n", bold(title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(displayTime(note.CreatedAt))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(displayTime(note.UpdatedAt))))
	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tags:"), cyan(strings.Join(note.Tags, ", "))))
	}
	if folderName != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Folder:"), folderName))
	}
	sb.WriteString(Separator())
	return sb.String()
}

// FormatNoteContent renders the note body for the terminal. The editor's
// rich-text HTML is downgraded to markdown first.
func FormatNoteContent(content string) string {
	md := export.ToMarkdown(content)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func FormatFolderListItem(folder models.Folder, count int, active bool) string {
	marker := " "
	if active {
		marker = cyan(">")
	}
	idPrefix := folder.ID
	if len(idPrefix) > 6 {
		idPrefix = idPrefix[:6]
	}
	return fmt.Sprintf("%s %s  %s %s\n",
		marker, faint(idPrefix), bold(folder.Name), faint(fmt.Sprintf("(%d)", count)))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

// displayTime shortens a stored timestamp for listing. Falls back to the raw
// value when it does not parse.
func displayTime(ts string) string {
	if len(ts) >= 16 {
		return strings.ReplaceAll(ts[:16], "T", " ")
	}
	return ts
}
