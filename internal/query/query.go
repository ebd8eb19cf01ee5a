// ABOUTME: Pure note-selection pipeline: scope, tag, search, date, sort.
// ABOUTME: Idempotent; copies its input and never mutates the collection.

package query

import (
	"sort"
	"strings"

	"github.com/inkwell-notes/inkwell/internal/clock"
	"github.com/inkwell-notes/inkwell/internal/models"
)

// SortMode selects the final ordering of the view.
type SortMode string

const (
	SortUpdatedDesc SortMode = "updated_desc" // default
	SortUpdatedAsc  SortMode = "updated_asc"
	SortTitleAsc    SortMode = "title_asc"
	SortTitleDesc   SortMode = "title_desc"
)

// TagAll is the sentinel filter value meaning "no tag filter".
const TagAll = "all"

type scopeKind int

const (
	scopeUnfiled scopeKind = iota // the default "All Notes" view
	scopeEverything
	scopeFolder
)

// Scope is the folder context constraining which notes are considered.
// The zero value is the unfiled "All Notes" view.
type Scope struct {
	kind     scopeKind
	folderID string
}

// Unfiled retains only notes with no folder reference.
func Unfiled() Scope { return Scope{kind: scopeUnfiled} }

// Everything retains all notes regardless of folder.
func Everything() Scope { return Scope{kind: scopeEverything} }

// Folder retains only notes filed under id. An empty id degrades to Unfiled.
func Folder(id string) Scope {
	if id == "" {
		return Unfiled()
	}
	return Scope{kind: scopeFolder, folderID: id}
}

// FolderID returns the scoped folder id, empty unless this is a folder scope.
func (s Scope) FolderID() string { return s.folderID }

func (s Scope) matches(n *models.Note) bool {
	switch s.kind {
	case scopeEverything:
		return true
	case scopeFolder:
		return n.FolderID == s.folderID
	default:
		return n.FolderID == ""
	}
}

// Params are the view controls. Zero values disable each stage except Sort,
// where the empty mode means updated-descending.
type Params struct {
	Scope  Scope
	Tag    string // exact tag, TagAll or "" disables
	Search string // case-insensitive substring over title+content+tags
	Date   string // local calendar date 2006-01-02, "" disables
	Sort   SortMode
}

// Apply runs the pipeline stages in fixed order and returns a new ordered
// slice. Running it twice over an unchanged collection yields an identical
// result.
func Apply(notes []models.Note, p Params) []models.Note {
	result := make([]models.Note, 0, len(notes))
	search := strings.ToLower(strings.TrimSpace(p.Search))

	for i := range notes {
		n := &notes[i]
		if !p.Scope.matches(n) {
			continue
		}
		if p.Tag != "" && p.Tag != TagAll && !n.HasTag(p.Tag) {
			continue
		}
		if search != "" && !containsQuery(n, search) {
			continue
		}
		if p.Date != "" && !onLocalDate(n, p.Date) {
			continue
		}
		result = append(result, notes[i])
	}

	sortNotes(result, p.Sort)
	return result
}

func containsQuery(n *models.Note, query string) bool {
	haystack := strings.ToLower(n.Title + " " + n.Content + " " + strings.Join(n.Tags, " "))
	return strings.Contains(haystack, query)
}

// onLocalDate compares against the viewer's local calendar date, not a UTC
// slice: a note created at 23:30 local belongs to that local day even when
// its UTC timestamp has already rolled over.
func onLocalDate(n *models.Note, date string) bool {
	source := n.CreatedAt
	if source == "" {
		source = n.UpdatedAt
	}
	local, ok := clock.LocalDate(source)
	return ok && local == date
}

// sortNotes is stable: notes comparing equal keep their input order.
func sortNotes(notes []models.Note, mode SortMode) {
	switch mode {
	case SortUpdatedAsc:
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].UpdatedAt < notes[j].UpdatedAt
		})
	case SortTitleAsc:
		sort.SliceStable(notes, func(i, j int) bool {
			return titleLess(notes[i].Title, notes[j].Title)
		})
	case SortTitleDesc:
		sort.SliceStable(notes, func(i, j int) bool {
			return titleLess(notes[j].Title, notes[i].Title)
		})
	default: // SortUpdatedDesc
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[j].UpdatedAt < notes[i].UpdatedAt
		})
	}
}

// titleLess compares titles case-insensitively. Missing titles sort as the
// empty string: first ascending, last descending. Case-insensitively equal
// titles compare equal so the stable sort keeps their input order.
func titleLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
