// ABOUTME: Note export: plain text, markdown, and a printable HTML document.
// ABOUTME: Rich-text HTML content is downgraded to markdown by tag rewriting.

package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/inkwell-notes/inkwell/internal/models"
)

// Text renders notes as a flat text dump with one block per note.
func Text(notes []models.Note) string {
	if len(notes) == 0 {
		return "(No notes to export)"
	}

	var sb strings.Builder
	for i, note := range notes {
		title := note.Title
		if title == "" {
			title = "Untitled note"
		}
		tags := strings.Join(note.Tags, ", ")
		if tags == "" {
			tags = "none"
		}

		fmt.Fprintf(&sb, "=== NOTE %d ===\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n", title)
		fmt.Fprintf(&sb, "Tags: %s\n", tags)
		if note.CreatedAt != "" {
			fmt.Fprintf(&sb, "Created: %s\n", note.CreatedAt)
		}
		if note.UpdatedAt != "" {
			fmt.Fprintf(&sb, "Updated: %s\n", note.UpdatedAt)
		}
		sb.WriteString("\nContent:\n")
		if note.Content == "" {
			sb.WriteString("(empty)")
		} else {
			sb.WriteString(note.Content)
		}
		fmt.Fprintf(&sb, "\n\n=== END NOTE %d ===\n\n", i+1)
	}
	return sb.String()
}

// Markdown renders notes as a single markdown document, one section per note.
func Markdown(notes []models.Note) string {
	if len(notes) == 0 {
		return "# No notes to export"
	}

	var sb strings.Builder
	for _, note := range notes {
		title := note.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&sb, "# %s\n", title)
		if note.CreatedAt != "" {
			fmt.Fprintf(&sb, "*Created: %s*\n", note.CreatedAt)
		}
		if len(note.Tags) > 0 {
			fmt.Fprintf(&sb, "**Tags:** %s\n", strings.Join(note.Tags, ", "))
		}
		fmt.Fprintf(&sb, "\n%s\n\n---\n\n", ToMarkdown(note.Content))
	}
	return sb.String()
}

var (
	reBold   = regexp.MustCompile(`(?i)<(?:b|strong)>(.*?)</(?:b|strong)>`)
	reItalic = regexp.MustCompile(`(?i)<(?:i|em)>(.*?)</(?:i|em)>`)
	reBreak  = regexp.MustCompile(`(?i)<br\s*/?>`)
	reDivOpn = regexp.MustCompile(`(?i)<div>`)
	reDivCls = regexp.MustCompile(`(?i)</div>`)
	rePara   = regexp.MustCompile(`(?i)<p>(.*?)</p>`)
	reTag    = regexp.MustCompile(`<[^>]*>`)
)

// ToMarkdown downgrades the editor's rich-text HTML to basic markdown.
// Unknown tags are stripped rather than escaped.
func ToMarkdown(html string) string {
	text := html
	text = reBold.ReplaceAllString(text, "**$1**")
	text = reItalic.ReplaceAllString(text, "*$1*")
	text = reBreak.ReplaceAllString(text, "\n")
	text = reDivOpn.ReplaceAllString(text, "\n")
	text = reDivCls.ReplaceAllString(text, "")
	text = rePara.ReplaceAllString(text, "\n$1\n")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = reTag.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// HTML renders notes into a self-contained printable document. Content goes
// through the markdown downgrade and back to sanitized HTML.
func HTML(notes []models.Note) (string, error) {
	md := goldmark.New(
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)

	var body bytes.Buffer
	for _, note := range notes {
		title := note.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&body, "<section>\n<h2>%s</h2>\n", escape(title))
		var meta []string
		if note.CreatedAt != "" {
			meta = append(meta, "Created: "+escape(note.CreatedAt))
		}
		if len(note.Tags) > 0 {
			meta = append(meta, "Tags: "+escape(strings.Join(note.Tags, ", ")))
		}
		if len(meta) > 0 {
			fmt.Fprintf(&body, "<p class=\"meta\">%s</p>\n", strings.Join(meta, " | "))
		}
		if err := md.Convert([]byte(ToMarkdown(note.Content)), &body); err != nil {
			return "", fmt.Errorf("render note %s: %w", note.ID, err)
		}
		body.WriteString("</section>\n<hr>\n")
	}

	var doc strings.Builder
	doc.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<title>Notes Export</title>\n")
	doc.WriteString("<style>body{font-family:system-ui,sans-serif;max-width:800px;margin:0 auto;padding:2rem}.meta{font-size:.8em;color:#666}</style>\n")
	doc.WriteString("</head>\n<body>\n<h1>My Notes Export</h1>\n")
	doc.WriteString(body.String())
	doc.WriteString("</body>\n</html>\n")
	return doc.String(), nil
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
