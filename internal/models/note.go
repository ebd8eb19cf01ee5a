// ABOUTME: Note model representing a rich-text note with metadata.
// ABOUTME: Timestamps are sortable ISO-8601 strings, folder link is nullable.

package models

// Note is the unit record of the workspace. FolderID is empty for unfiled
// notes; a FolderID pointing at a folder that no longer exists is displayed
// as unfiled, never treated as an error.
type Note struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	FolderID      string   `json:"folderId,omitempty"`
	Theme         string   `json:"theme,omitempty"`
	EditorPattern string   `json:"editorPattern,omitempty"`
}

// HasTag reports whether the note carries tag (exact, case-sensitive match,
// mirroring the filter chips).
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DedupeTags removes duplicate entries preserving first-seen order.
// Comparison is case-sensitive: "Work" and "work" are distinct tags.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

const DefaultTheme = "amoled-dark"

var validThemes = map[string]struct{}{
	"amoled-dark":        {},
	"professional-light": {},
	"corporate-gray":     {},
	"minimal-white":      {},
}

// NormalizeTheme maps unknown theme names to the default.
func NormalizeTheme(theme string) string {
	if _, ok := validThemes[theme]; ok {
		return theme
	}
	return DefaultTheme
}

var validEditorPatterns = map[string]struct{}{
	"plain":  {},
	"lined":  {},
	"grid":   {},
	"dotted": {},
}

// ValidEditorPattern reports whether pattern names a known editor surface.
func ValidEditorPattern(pattern string) bool {
	_, ok := validEditorPatterns[pattern]
	return ok
}
