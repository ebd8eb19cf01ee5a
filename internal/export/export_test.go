// ABOUTME: Tests for the export formats and the HTML-to-markdown downgrade.
// ABOUTME: Exports operate on whatever slice the caller passes.

package export

import (
	"strings"
	"testing"

	"github.com/inkwell-notes/inkwell/internal/models"
)

func TestTextExport(t *testing.T) {
	notes := []models.Note{
		{Title: "First", Content: "hello", Tags: []string{"a", "b"}, CreatedAt: "2026-01-01T00:00:00.000Z"},
		{Title: "", Content: ""},
	}

	out := Text(notes)

	if !strings.Contains(out, "=== NOTE 1 ===") || !strings.Contains(out, "=== END NOTE 2 ===") {
		t.Errorf("missing note delimiters:\n%s", out)
	}
	if !strings.Contains(out, "Title: First") {
		t.Error("missing title line")
	}
	if !strings.Contains(out, "Tags: a, b") {
		t.Error("missing tags line")
	}
	if !strings.Contains(out, "Title: Untitled note") {
		t.Error("empty title should render as Untitled note")
	}
	if !strings.Contains(out, "Tags: none") {
		t.Error("empty tags should render as none")
	}
	if !strings.Contains(out, "(empty)") {
		t.Error("empty content should render as (empty)")
	}
}

func TestTextExportEmpty(t *testing.T) {
	if out := Text(nil); out != "(No notes to export)" {
		t.Errorf("empty export = %q", out)
	}
}

func TestMarkdownExport(t *testing.T) {
	notes := []models.Note{
		{Title: "Plan", Content: "<b>bold</b> move", Tags: []string{"work"}, CreatedAt: "2026-01-01T00:00:00.000Z"},
	}

	out := Markdown(notes)

	if !strings.Contains(out, "# Plan") {
		t.Error("missing heading")
	}
	if !strings.Contains(out, "**Tags:** work") {
		t.Error("missing tags")
	}
	if !strings.Contains(out, "**bold** move") {
		t.Errorf("content not downgraded to markdown:\n%s", out)
	}
}

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "<b>x</b>", "**x**"},
		{"strong", "<STRONG>x</STRONG>", "**x**"},
		{"italic", "<i>x</i>", "*x*"},
		{"em", "<em>x</em>", "*x*"},
		{"break", "a<br>b", "a\nb"},
		{"self-closing break", "a<br/>b", "a\nb"},
		{"div", "a<div>b</div>", "a\nb"},
		{"paragraph", "<p>x</p>", "x"},
		{"nbsp", "a&nbsp;b", "a b"},
		{"unknown tags stripped", `<span style="x">y</span>`, "y"},
		{"plain text untouched", "just words", "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMarkdown(tt.in); got != tt.want {
				t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTMLExport(t *testing.T) {
	notes := []models.Note{
		{ID: "n1", Title: "Safe <Title>", Content: "<b>bold</b> body", Tags: []string{"x&y"}},
	}

	out, err := HTML(notes)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "<!doctype html>") {
		t.Error("not a full document")
	}
	if !strings.Contains(out, "Safe &lt;Title&gt;") {
		t.Error("title not escaped")
	}
	if !strings.Contains(out, "x&amp;y") {
		t.Error("tag metadata not escaped")
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("content should round-trip through markdown:\n%s", out)
	}
	if strings.Contains(out, "<b>bold</b>") {
		t.Error("raw editor HTML leaked into the document")
	}
}

func TestHTMLExportUntitled(t *testing.T) {
	out, err := HTML([]models.Note{{Content: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<h2>Untitled</h2>") {
		t.Error("missing Untitled heading")
	}
}
